package responses

import (
	"mommycare-service/internal/pkg/dto/requests"
	"time"
)

type MedicalReport struct {
	ID              string `json:"id"`
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	DoctorSpecialty string `json:"doctorSpecialty,omitempty"`
	requests.MedicalReportContent
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReportedPatient struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ReportCount  int64     `json:"reportCount"`
	LastReportAt time.Time `json:"lastReportAt"`
}
