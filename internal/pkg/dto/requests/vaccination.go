package requests

type InitializeVaccinations struct {
	BabyBirthDate string `json:"babyBirthDate" validate:"required,date_only"`
}

type VaccinationAppointment struct {
	Vaccine       string `json:"vaccine" validate:"required"`
	PreferredDate string `json:"preferredDate" validate:"required,date_only"`
	PreferredTime string `json:"preferredTime" validate:"required,preferred_time"`
	Location      string `json:"location" validate:"required,max=200"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type CompleteVaccination struct {
	VaccinationDate string `json:"vaccinationDate" validate:"omitempty,date_only"`
	BatchNo         string `json:"batchNo" validate:"max=100"`
	AdverseEffects  string `json:"adverseEffects" validate:"max=1000"`
	Notes           string `json:"notes" validate:"max=1000"`
}
