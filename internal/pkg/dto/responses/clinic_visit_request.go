package responses

import "time"

type ClinicVisitRequestPayload struct {
	Vaccine       string `json:"vaccine,omitempty"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Location      string `json:"location"`
	Notes         string `json:"notes,omitempty"`
}

type ClinicVisitRequest struct {
	ID          string                    `json:"id"`
	RequesterID string                    `json:"requesterId"`
	RequestType string                    `json:"requestType"`
	Payload     ClinicVisitRequestPayload `json:"payload"`
	Status      string                    `json:"status"`
	StaffNotes  string                    `json:"staffNotes,omitempty"`
	ReviewedBy  string                    `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time                `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}
