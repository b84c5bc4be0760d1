package utils

import (
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Vaccination Appointment", func(t *testing.T) {
		request := &requests.VaccinationAppointment{
			Vaccine:       "MMR 1 (Measles, Mumps, Rubella)",
			PreferredDate: "2025-10-01",
			PreferredTime: "Morning",
			Location:      "City Clinic",
		}

		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Missing Birth Date Uses JSON Field Name", func(t *testing.T) {
		err := ValidateStruct(&requests.InitializeVaccinations{})

		assert.Error(t, err)
		assert.Equal(t, "babyBirthDate is required", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Invalid Birth Date Format", func(t *testing.T) {
		err := ValidateStruct(&requests.InitializeVaccinations{BabyBirthDate: "15/01/2025"})

		assert.Error(t, err)
		assert.Equal(t, "babyBirthDate must be a valid date in YYYY-MM-DD format", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Unknown Request Type", func(t *testing.T) {
		request := &requests.CreateClinicVisitRequest{
			RequestType:   "Massage",
			PreferredDate: "2025-10-01",
			PreferredTime: "Evening",
			Location:      "City Clinic",
		}

		err := ValidateStruct(request)

		assert.Error(t, err)
		assert.Equal(t, "requestType must be a valid request type", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Unknown Preferred Time", func(t *testing.T) {
		request := &requests.CreateClinicVisitRequest{
			RequestType:   "Ultrasound",
			PreferredDate: "2025-10-01",
			PreferredTime: "Midnight",
			Location:      "City Clinic",
		}

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Product External Link Must Be HTTP", func(t *testing.T) {
		request := &requests.CreateProduct{
			Name:         "Baby Carrier",
			Category:     "Travel",
			Description:  "Ergonomic carrier",
			ExternalLink: "ftp://example.com/carrier",
			Image:        "data:image/png;base64,AAAA",
		}

		err := ValidateStruct(request)

		assert.Error(t, err)
		assert.Equal(t, "externalLink must start with http:// or https://", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Weak Password Rejected", func(t *testing.T) {
		request := &requests.RegisterUser{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "password",
			Role:      "mom",
		}

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Admin Role Cannot Self Register", func(t *testing.T) {
		request := &requests.RegisterUser{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "Str0ng!Pass",
			Role:      "admin",
		}

		err := ValidateStruct(request)

		assert.Error(t, err)
		assert.Equal(t, "role must be one of [mom, doctor, midwife, service_provider]", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateStruct_MedicalReport(t *testing.T) {
	validReport := func() *requests.MedicalReportContent {
		return &requests.MedicalReportContent{
			Visit:     requests.MedicalReportVisit{Date: "2026-10-01", ReasonForVisit: "Prenatal check"},
			Diagnosis: requests.MedicalReportDiagnosis{Primary: "Healthy pregnancy"},
		}
	}

	t.Run("Minimal Report Is Valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validReport()))
	})

	t.Run("Nested Diagnosis Is Required", func(t *testing.T) {
		request := validReport()
		request.Diagnosis.Primary = ""

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("At Most Ten Additional Fields", func(t *testing.T) {
		request := validReport()
		for i := 0; i < 11; i++ {
			request.AdditionalFields = append(request.AdditionalFields, requests.MedicalReportAdditionalField{Label: "Label", Value: "Value"})
		}

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Medication Needs A Name", func(t *testing.T) {
		request := validReport()
		request.Treatment.Medications = []requests.MedicalReportMedication{{Dosage: "5mg"}}

		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateStruct_SendChatMessage(t *testing.T) {
	assert.NoError(t, ValidateStruct(&requests.SendChatMessage{RecipientID: "doc-1", Content: "hi"}))
	assert.Error(t, ValidateStruct(&requests.SendChatMessage{RecipientID: "doc-1", Content: "hi", MessageType: "video"}))
	assert.Error(t, ValidateStruct(&requests.SendChatMessage{Content: "hi"}))
}
