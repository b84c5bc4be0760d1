package models

import (
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/responses"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Specialty string             `bson:"specialty,omitempty"`
	IsActive  bool               `bson:"isActive"`
	TimeModel `bson:",inline"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ProviderSpecialty falls back to the role's default specialty when none is
// stored on the profile.
func (u *User) ProviderSpecialty() string {
	if u.Specialty != "" {
		return u.Specialty
	}
	switch u.Role {
	case constvars.RoleDoctor:
		return constvars.SpecialtyGeneralMedicine
	case constvars.RoleMidwife:
		return constvars.SpecialtyMidwifery
	}
	return ""
}

func (u *User) ConvertIntoResponse() responses.UserProfile {
	return responses.UserProfile{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Name:      u.FullName(),
		Email:     u.Email,
		Role:      u.Role,
		Specialty: u.Specialty,
		IsActive:  u.IsActive,
	}
}

func (u *User) ConvertIntoProviderResponse(isMyMidwife bool) responses.Provider {
	return responses.Provider{
		ID:          u.ID.Hex(),
		Name:        u.FullName(),
		Role:        u.Role,
		Email:       u.Email,
		Specialty:   u.ProviderSpecialty(),
		IsActive:    u.IsActive,
		IsMyMidwife: isMyMidwife,
	}
}
