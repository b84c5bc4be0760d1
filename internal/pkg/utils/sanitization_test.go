package utils

import (
	"mommycare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email And Role Normalization", func(t *testing.T) {
		request := &requests.RegisterUser{
			FirstName: "  Jane ",
			LastName:  " Doe  ",
			Email:     "  JANE@EXAMPLE.COM  ",
			Role:      "  Mom ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Jane", request.FirstName, "first name should be trimmed")
		assert.Equal(t, "Doe", request.LastName, "last name should be trimmed")
		assert.Equal(t, "jane@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "mom", request.Role, "role should be lowercase and trimmed")
	})
}

func TestSanitizeCreateProductRequest(t *testing.T) {
	t.Run("Tags Are Trimmed And Empty Tags Dropped", func(t *testing.T) {
		request := &requests.CreateProduct{
			Name: "  Soft Blanket ",
			Tags: []string{"  cozy ", "", "   ", "warm"},
		}

		SanitizeCreateProductRequest(request)

		assert.Equal(t, "Soft Blanket", request.Name)
		assert.Equal(t, []string{"cozy", "warm"}, request.Tags)
	})

	t.Run("Empty Tags Stay Empty", func(t *testing.T) {
		request := &requests.CreateProduct{Tags: []string{}}

		SanitizeCreateProductRequest(request)

		assert.Equal(t, []string{}, request.Tags)
	})
}

func TestSanitizeReviewClinicVisitRequest(t *testing.T) {
	request := &requests.ReviewClinicVisitRequest{Status: " Approved ", StaffNotes: " see you soon "}

	SanitizeReviewClinicVisitRequest(request)

	assert.Equal(t, "approved", request.Status)
	assert.Equal(t, "see you soon", request.StaffNotes)
}

func TestSanitizeSendChatMessageRequest(t *testing.T) {
	request := &requests.SendChatMessage{RecipientID: " doc-1 ", Content: "  hello  ", MessageType: " Image "}

	SanitizeSendChatMessageRequest(request)

	assert.Equal(t, "doc-1", request.RecipientID)
	assert.Equal(t, "hello", request.Content)
	assert.Equal(t, "image", request.MessageType)
}

func TestSanitizeMedicalReportRequest(t *testing.T) {
	request := &requests.MedicalReportContent{
		Diagnosis:        requests.MedicalReportDiagnosis{Primary: " Anemia ", Severity: " Mild "},
		Treatment:        requests.MedicalReportTreatment{Medications: []requests.MedicalReportMedication{{Name: " Iron ", Dosage: " 60mg "}}},
		AdditionalFields: []requests.MedicalReportAdditionalField{{Label: " Blood type ", Value: " O+ "}},
	}

	SanitizeMedicalReportRequest(request)

	assert.Equal(t, "Anemia", request.Diagnosis.Primary)
	assert.Equal(t, "mild", request.Diagnosis.Severity)
	assert.Equal(t, "Iron", request.Treatment.Medications[0].Name)
	assert.Equal(t, "60mg", request.Treatment.Medications[0].Dosage)
	assert.Equal(t, "Blood type", request.AdditionalFields[0].Label)
	assert.Equal(t, "O+", request.AdditionalFields[0].Value)
}
