package utils

import (
	"mommycare-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Specialty = strings.TrimSpace(input.Specialty)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeResetPasswordRequest(input *requests.ResetPassword) {
	input.Token = strings.TrimSpace(input.Token)
}

func SanitizeInitializeVaccinationsRequest(input *requests.InitializeVaccinations) {
	input.BabyBirthDate = strings.TrimSpace(input.BabyBirthDate)
}

func SanitizeVaccinationAppointmentRequest(input *requests.VaccinationAppointment) {
	input.Vaccine = strings.TrimSpace(input.Vaccine)
	input.PreferredDate = strings.TrimSpace(input.PreferredDate)
	input.PreferredTime = strings.TrimSpace(input.PreferredTime)
	input.Location = strings.TrimSpace(input.Location)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCompleteVaccinationRequest(input *requests.CompleteVaccination) {
	input.VaccinationDate = strings.TrimSpace(input.VaccinationDate)
	input.BatchNo = strings.TrimSpace(input.BatchNo)
	input.AdverseEffects = strings.TrimSpace(input.AdverseEffects)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCreateClinicVisitRequest(input *requests.CreateClinicVisitRequest) {
	input.RequestType = strings.TrimSpace(input.RequestType)
	input.Vaccine = strings.TrimSpace(input.Vaccine)
	input.PreferredDate = strings.TrimSpace(input.PreferredDate)
	input.PreferredTime = strings.TrimSpace(input.PreferredTime)
	input.Location = strings.TrimSpace(input.Location)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateClinicVisitRequest(input *requests.UpdateClinicVisitRequest) {
	input.PreferredDate = strings.TrimSpace(input.PreferredDate)
	input.PreferredTime = strings.TrimSpace(input.PreferredTime)
	input.Location = strings.TrimSpace(input.Location)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeReviewClinicVisitRequest(input *requests.ReviewClinicVisitRequest) {
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	input.StaffNotes = strings.TrimSpace(input.StaffNotes)
}

func SanitizeAssignMidwifeRequest(input *requests.AssignMidwife) {
	input.MidwifeID = strings.TrimSpace(input.MidwifeID)
	input.MomID = strings.TrimSpace(input.MomID)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCreateProductRequest(input *requests.CreateProduct) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Description = strings.TrimSpace(input.Description)
	input.ExternalLink = strings.TrimSpace(input.ExternalLink)
	input.Tags = cleanWhiteSpaceFromEachStringOfAnArray(input.Tags)
}

func SanitizeUpdateProductRequest(input *requests.UpdateProduct) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Description = strings.TrimSpace(input.Description)
	input.ExternalLink = strings.TrimSpace(input.ExternalLink)
	if input.Tags != nil {
		input.Tags = cleanWhiteSpaceFromEachStringOfAnArray(input.Tags)
	}
}

func SanitizeReviewProductRequest(input *requests.ReviewProduct) {
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
}

func SanitizeSendChatMessageRequest(input *requests.SendChatMessage) {
	input.RecipientID = strings.TrimSpace(input.RecipientID)
	input.Content = strings.TrimSpace(input.Content)
	input.MessageType = strings.ToLower(strings.TrimSpace(input.MessageType))
}

func SanitizeMedicalReportRequest(input *requests.MedicalReportContent) {
	input.Visit.Date = strings.TrimSpace(input.Visit.Date)
	input.Visit.ReasonForVisit = strings.TrimSpace(input.Visit.ReasonForVisit)
	input.Visit.Symptoms = strings.TrimSpace(input.Visit.Symptoms)
	input.Examination.BloodPressure = strings.TrimSpace(input.Examination.BloodPressure)
	input.Examination.HeartRate = strings.TrimSpace(input.Examination.HeartRate)
	input.Examination.Temperature = strings.TrimSpace(input.Examination.Temperature)
	input.Examination.Weight = strings.TrimSpace(input.Examination.Weight)
	input.Examination.PhysicalFindings = strings.TrimSpace(input.Examination.PhysicalFindings)
	input.Diagnosis.Primary = strings.TrimSpace(input.Diagnosis.Primary)
	input.Diagnosis.Secondary = strings.TrimSpace(input.Diagnosis.Secondary)
	input.Diagnosis.Severity = strings.ToLower(strings.TrimSpace(input.Diagnosis.Severity))
	input.Treatment.Instructions = strings.TrimSpace(input.Treatment.Instructions)
	for i := range input.Treatment.Medications {
		medication := &input.Treatment.Medications[i]
		medication.Name = strings.TrimSpace(medication.Name)
		medication.Dosage = strings.TrimSpace(medication.Dosage)
		medication.Frequency = strings.TrimSpace(medication.Frequency)
		medication.Duration = strings.TrimSpace(medication.Duration)
	}
	for i := range input.LabResults {
		labResult := &input.LabResults[i]
		labResult.Name = strings.TrimSpace(labResult.Name)
		labResult.Result = strings.TrimSpace(labResult.Result)
		labResult.NormalRange = strings.TrimSpace(labResult.NormalRange)
		labResult.Notes = strings.TrimSpace(labResult.Notes)
	}
	input.Notes = strings.TrimSpace(input.Notes)
	input.Recommendations = strings.TrimSpace(input.Recommendations)
	input.FollowUp.Date = strings.TrimSpace(input.FollowUp.Date)
	input.FollowUp.Notes = strings.TrimSpace(input.FollowUp.Notes)
	for i := range input.AdditionalFields {
		input.AdditionalFields[i].Label = strings.TrimSpace(input.AdditionalFields[i].Label)
		input.AdditionalFields[i].Value = strings.TrimSpace(input.AdditionalFields[i].Value)
	}
}
