package constvars

// Roles
const (
	RoleMom             = "mom"
	RoleDoctor          = "doctor"
	RoleMidwife         = "midwife"
	RoleServiceProvider = "service_provider"
	RoleAdmin           = "admin"
)

// Vaccination record statuses
const (
	VaccinationStatusPending   = "pending"
	VaccinationStatusCompleted = "completed"
	VaccinationStatusMissed    = "missed"
)

// Clinic visit request statuses
const (
	ClinicVisitRequestStatusPending   = "pending"
	ClinicVisitRequestStatusApproved  = "approved"
	ClinicVisitRequestStatusRejected  = "rejected"
	ClinicVisitRequestStatusCancelled = "cancelled"
)

// Clinic visit request types
const (
	RequestTypePrenatalCare       = "Prenatal Care"
	RequestTypeUltrasound         = "Ultrasound"
	RequestTypeBloodTests         = "Blood Tests"
	RequestTypeVaccinations       = "Vaccinations"
	RequestTypeEmergencyCare      = "Emergency Care"
	RequestTypeRegularCheckup     = "Regular Checkup"
	RequestTypeLaboratoryServices = "Laboratory Services"
	RequestTypeConsultation       = "Consultation"
)

var ClinicVisitRequestTypes = []string{
	RequestTypePrenatalCare,
	RequestTypeUltrasound,
	RequestTypeBloodTests,
	RequestTypeVaccinations,
	RequestTypeEmergencyCare,
	RequestTypeRegularCheckup,
	RequestTypeLaboratoryServices,
	RequestTypeConsultation,
}

var PreferredTimeSlots = []string{
	"Morning",
	"Afternoon",
	"Evening",
	"Any Time",
}

// Vaccination appointment redirect hints consumed by the mom dashboard
const (
	VaccinationAppointmentRedirectTo       = "/mom/appointments"
	VaccinationAppointmentHighlightSection = "vaccinations"
	VaccinationAppointmentDefaultNotes     = "Vaccination appointment requested for: %s"
)

// Midwife assignment statuses
const (
	MidwifeAssignmentStatusActive   = "active"
	MidwifeAssignmentStatusInactive = "inactive"
)

// Provider specialties
const (
	SpecialtyGeneralMedicine = "General Medicine"
	SpecialtyMidwifery       = "Midwifery"
)

// Product statuses
const (
	ProductStatusActive   = "active"
	ProductStatusPending  = "pending"
	ProductStatusInactive = "inactive"
	ProductStatusRejected = "rejected"
)

var ProductCategories = []string{
	"Feeding",
	"Comfort",
	"Travel",
	"Clothing",
	"Safety",
	"Toys",
	"Health",
	"Bath & Care",
	"Sleep",
	"Development",
}

const (
	ProductCounterViews  = "views"
	ProductCounterClicks = "clicks"
)

// Chat message types and statuses
const (
	ChatMessageTypeText  = "text"
	ChatMessageTypeImage = "image"
	ChatMessageTypeFile  = "file"

	ChatMessageStatusSent = "sent"
	ChatMessageStatusRead = "read"
)

// ChatConversationKeySeparator joins the sorted participant ids of a
// conversation into its unique key.
const ChatConversationKeySeparator = "_"

// Medical reports carry at most this many free-form fields.
const MedicalReportMaxAdditionalFields = 10

// Notification event types
const (
	NotificationClinicVisitRequestCreated   = "clinic_visit_request.created"
	NotificationClinicVisitRequestUpdated   = "clinic_visit_request.updated"
	NotificationClinicVisitRequestCancelled = "clinic_visit_request.cancelled"
	NotificationClinicVisitRequestReviewed  = "clinic_visit_request.reviewed"
	NotificationMidwifeAssigned             = "midwife_assignment.created"
	NotificationChatMessageCreated          = "chat_message.created"
	NotificationChatMessageDeleted          = "chat_message.deleted"
	NotificationMedicalReportCreated        = "medical_report.created"
)
