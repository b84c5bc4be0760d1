package responses

import "time"

type Provider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Specialty   string `json:"specialty"`
	IsActive    bool   `json:"isActive"`
	IsMyMidwife bool   `json:"isMyMidwife"`
}

type MidwifeAssignment struct {
	ID           string    `json:"id"`
	MidwifeID    string    `json:"midwifeId"`
	MomID        string    `json:"momId"`
	AssignedBy   string    `json:"assignedBy"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	AssignedDate time.Time `json:"assignedDate"`
}
