package models

import (
	"mommycare-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VaccinationRecord struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	MotherID             string             `bson:"motherId"`
	VaccineName          string             `bson:"vaccineName"`
	RecommendedAge       string             `bson:"recommendedAge"`
	DueDate              time.Time          `bson:"dueDate"`
	Status               string             `bson:"status"`
	VaccinationDate      *time.Time         `bson:"vaccinationDate,omitempty"`
	BatchNo              string             `bson:"batchNo,omitempty"`
	AdverseEffects       string             `bson:"adverseEffects,omitempty"`
	Notes                string             `bson:"notes,omitempty"`
	ClinicVisitRequestID string             `bson:"clinicVisitRequestId,omitempty"`
	TimeModel            `bson:",inline"`
}

func (v *VaccinationRecord) ConvertIntoResponse() responses.VaccinationRecord {
	return responses.VaccinationRecord{
		ID:                   v.ID.Hex(),
		MotherID:             v.MotherID,
		VaccineName:          v.VaccineName,
		RecommendedAge:       v.RecommendedAge,
		DueDate:              v.DueDate,
		Status:               v.Status,
		VaccinationDate:      v.VaccinationDate,
		BatchNo:              v.BatchNo,
		AdverseEffects:       v.AdverseEffects,
		Notes:                v.Notes,
		ClinicVisitRequestID: v.ClinicVisitRequestID,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}
