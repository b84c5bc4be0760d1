package models

import (
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClinicVisitRequestPayload struct {
	Vaccine       string `bson:"vaccine,omitempty"`
	PreferredDate string `bson:"preferredDate"`
	PreferredTime string `bson:"preferredTime"`
	Location      string `bson:"location"`
	Notes         string `bson:"notes,omitempty"`
}

type ClinicVisitRequest struct {
	ID          primitive.ObjectID        `bson:"_id,omitempty"`
	RequesterID string                    `bson:"requesterId"`
	RequestType string                    `bson:"requestType"`
	Payload     ClinicVisitRequestPayload `bson:"payload"`
	Status      string                    `bson:"status"`
	StaffNotes  string                    `bson:"staffNotes,omitempty"`
	ReviewedBy  string                    `bson:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time                `bson:"reviewedAt,omitempty"`
	TimeModel   `bson:",inline"`
}

func (c *ClinicVisitRequest) IsPending() bool {
	return c.Status == constvars.ClinicVisitRequestStatusPending
}

func (c *ClinicVisitRequest) ConvertIntoResponse() responses.ClinicVisitRequest {
	return responses.ClinicVisitRequest{
		ID:          c.ID.Hex(),
		RequesterID: c.RequesterID,
		RequestType: c.RequestType,
		Payload: responses.ClinicVisitRequestPayload{
			Vaccine:       c.Payload.Vaccine,
			PreferredDate: c.Payload.PreferredDate,
			PreferredTime: c.Payload.PreferredTime,
			Location:      c.Payload.Location,
			Notes:         c.Payload.Notes,
		},
		Status:     c.Status,
		StaffNotes: c.StaffNotes,
		ReviewedBy: c.ReviewedBy,
		ReviewedAt: c.ReviewedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
