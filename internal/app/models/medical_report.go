package models

import (
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicalReport snapshots the patient and doctor names at creation so a
// report still renders after either profile changes.
type MedicalReport struct {
	ID                            primitive.ObjectID `bson:"_id,omitempty"`
	PatientID                     string             `bson:"patientId"`
	PatientName                   string             `bson:"patientName"`
	DoctorID                      string             `bson:"doctorId"`
	DoctorName                    string             `bson:"doctorName"`
	DoctorSpecialty               string             `bson:"doctorSpecialty,omitempty"`
	requests.MedicalReportContent `bson:",inline"`
	TimeModel                     `bson:",inline"`
}

// ReportedPatientSummary is one row of the per-doctor patient aggregation.
type ReportedPatientSummary struct {
	PatientID    string    `bson:"_id"`
	PatientName  string    `bson:"patientName"`
	ReportCount  int64     `bson:"reportCount"`
	LastReportAt time.Time `bson:"lastReportAt"`
}

func (m *MedicalReport) ConvertIntoResponse() responses.MedicalReport {
	return responses.MedicalReport{
		ID:                   m.ID.Hex(),
		PatientID:            m.PatientID,
		PatientName:          m.PatientName,
		DoctorID:             m.DoctorID,
		DoctorName:           m.DoctorName,
		DoctorSpecialty:      m.DoctorSpecialty,
		MedicalReportContent: m.MedicalReportContent,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func (s *ReportedPatientSummary) ConvertIntoResponse() responses.ReportedPatient {
	return responses.ReportedPatient{
		ID:           s.PatientID,
		Name:         s.PatientName,
		ReportCount:  s.ReportCount,
		LastReportAt: s.LastReportAt,
	}
}
