package requests

type CreateClinicVisitRequest struct {
	RequestType   string `json:"requestType" validate:"required,request_type"`
	Vaccine       string `json:"vaccine" validate:"max=200"`
	PreferredDate string `json:"preferredDate" validate:"required,date_only"`
	PreferredTime string `json:"preferredTime" validate:"required,preferred_time"`
	Location      string `json:"location" validate:"required,max=200"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type UpdateClinicVisitRequest struct {
	PreferredDate string `json:"preferredDate" validate:"omitempty,date_only"`
	PreferredTime string `json:"preferredTime" validate:"omitempty,preferred_time"`
	Location      string `json:"location" validate:"max=200"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type ReviewClinicVisitRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	StaffNotes string `json:"staffNotes" validate:"max=1000"`
}

type ClinicVisitRequestFilter struct {
	RequesterID string
	RequestType string
	Status      string
}
