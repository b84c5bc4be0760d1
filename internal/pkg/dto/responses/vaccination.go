package responses

import "time"

type VaccinationRecord struct {
	ID                   string     `json:"id"`
	MotherID             string     `json:"motherId"`
	VaccineName          string     `json:"vaccineName"`
	RecommendedAge       string     `json:"recommendedAge"`
	DueDate              time.Time  `json:"dueDate"`
	Status               string     `json:"status"`
	VaccinationDate      *time.Time `json:"vaccinationDate,omitempty"`
	BatchNo              string     `json:"batchNo,omitempty"`
	AdverseEffects       string     `json:"adverseEffects,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	ClinicVisitRequestID string     `json:"clinicVisitRequestId,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type VaccinationAppointment struct {
	Request          ClinicVisitRequest `json:"request"`
	RedirectTo       string             `json:"redirectTo"`
	HighlightSection string             `json:"highlightSection"`
	RequestType      string             `json:"requestType"`
	VaccineName      string             `json:"vaccineName"`
	AppointmentID    string             `json:"appointmentId"`
}
