package requests

// MedicalReportContent is the doctor-authored body of a medical report. It is
// stored as-is and echoed back in responses.
type MedicalReportContent struct {
	Visit            MedicalReportVisit             `json:"visit" bson:"visit"`
	Examination      MedicalReportExamination       `json:"examination" bson:"examination"`
	Diagnosis        MedicalReportDiagnosis         `json:"diagnosis" bson:"diagnosis"`
	Treatment        MedicalReportTreatment         `json:"treatment" bson:"treatment"`
	LabResults       []MedicalReportLabResult       `json:"labResults" bson:"labResults" validate:"max=20,dive"`
	Notes            string                         `json:"notes" bson:"notes,omitempty" validate:"max=2000"`
	Recommendations  string                         `json:"recommendations" bson:"recommendations,omitempty" validate:"max=2000"`
	FollowUp         MedicalReportFollowUp          `json:"followUp" bson:"followUp"`
	AdditionalFields []MedicalReportAdditionalField `json:"additionalFields" bson:"additionalFields" validate:"max=10,dive"`
}

type MedicalReportVisit struct {
	Date           string `json:"date" bson:"date" validate:"required,date_only"`
	ReasonForVisit string `json:"reasonForVisit" bson:"reasonForVisit" validate:"required,max=500"`
	Symptoms       string `json:"symptoms" bson:"symptoms,omitempty" validate:"max=2000"`
}

type MedicalReportExamination struct {
	BloodPressure    string `json:"bloodPressure" bson:"bloodPressure,omitempty" validate:"max=50"`
	HeartRate        string `json:"heartRate" bson:"heartRate,omitempty" validate:"max=50"`
	Temperature      string `json:"temperature" bson:"temperature,omitempty" validate:"max=50"`
	Weight           string `json:"weight" bson:"weight,omitempty" validate:"max=50"`
	PhysicalFindings string `json:"physicalFindings" bson:"physicalFindings,omitempty" validate:"max=2000"`
}

type MedicalReportDiagnosis struct {
	Primary   string `json:"primary" bson:"primary" validate:"required,max=300"`
	Secondary string `json:"secondary" bson:"secondary,omitempty" validate:"max=300"`
	Severity  string `json:"severity" bson:"severity,omitempty" validate:"omitempty,oneof=mild moderate severe"`
}

type MedicalReportTreatment struct {
	Medications  []MedicalReportMedication `json:"medications" bson:"medications" validate:"max=20,dive"`
	Instructions string                    `json:"instructions" bson:"instructions,omitempty" validate:"max=2000"`
}

type MedicalReportMedication struct {
	Name      string `json:"name" bson:"name" validate:"required,max=200"`
	Dosage    string `json:"dosage" bson:"dosage,omitempty" validate:"max=100"`
	Frequency string `json:"frequency" bson:"frequency,omitempty" validate:"max=100"`
	Duration  string `json:"duration" bson:"duration,omitempty" validate:"max=100"`
}

type MedicalReportLabResult struct {
	Name        string `json:"name" bson:"name" validate:"required,max=200"`
	Result      string `json:"result" bson:"result,omitempty" validate:"max=500"`
	NormalRange string `json:"normalRange" bson:"normalRange,omitempty" validate:"max=100"`
	Notes       string `json:"notes" bson:"notes,omitempty" validate:"max=500"`
}

type MedicalReportFollowUp struct {
	Required bool   `json:"required" bson:"required"`
	Date     string `json:"date" bson:"date,omitempty" validate:"omitempty,date_only"`
	Notes    string `json:"notes" bson:"notes,omitempty" validate:"max=1000"`
}

type MedicalReportAdditionalField struct {
	Label string `json:"label" bson:"label" validate:"required,max=100"`
	Value string `json:"value" bson:"value" validate:"required,max=1000"`
}
