package models

import (
	"mommycare-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MidwifeAssignment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	MidwifeID    string             `bson:"midwifeId"`
	MomID        string             `bson:"momId"`
	AssignedBy   string             `bson:"assignedBy"`
	Status       string             `bson:"status"`
	Notes        string             `bson:"notes,omitempty"`
	AssignedDate time.Time          `bson:"assignedDate"`
	TimeModel    `bson:",inline"`
}

func (m *MidwifeAssignment) ConvertIntoResponse() responses.MidwifeAssignment {
	return responses.MidwifeAssignment{
		ID:           m.ID.Hex(),
		MidwifeID:    m.MidwifeID,
		MomID:        m.MomID,
		AssignedBy:   m.AssignedBy,
		Status:       m.Status,
		Notes:        m.Notes,
		AssignedDate: m.AssignedDate,
	}
}
