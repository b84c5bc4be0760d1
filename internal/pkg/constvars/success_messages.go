package constvars

const ResponseUnknown = "unknown"

const (
	// Auth
	RegisterSuccessMessage       = "user registered successfully"
	LoginSuccessMessage          = "successfully login"
	LogoutSuccessMessage         = "successfully logout"
	ForgotPasswordSuccessMessage = "if the email is registered, a reset password link has been sent"
	ResetPasswordSuccessMessage  = "password reset successfully"

	// Vaccinations
	InitializeVaccinationsSuccessMessage = "vaccination schedule initialized successfully"
	GetVaccinationsSuccessMessage        = "vaccination records retrieved successfully"
	VaccinationAppointmentSuccessMessage = "vaccination appointment request submitted successfully"
	CompleteVaccinationSuccessMessage    = "vaccination marked as completed"

	// Clinic visit requests
	CreateClinicVisitRequestSuccessMessage = "clinic visit request submitted successfully"
	GetClinicVisitRequestsSuccessMessage   = "clinic visit requests retrieved successfully"
	GetClinicVisitRequestSuccessMessage    = "clinic visit request retrieved successfully"
	UpdateClinicVisitRequestSuccessMessage = "clinic visit request updated successfully"
	CancelClinicVisitRequestSuccessMessage = "clinic visit request cancelled successfully"
	ReviewClinicVisitRequestSuccessMessage = "clinic visit request reviewed successfully"

	// Providers
	GetProvidersSuccessMessage  = "providers retrieved successfully"
	GetMyMidwifeSuccessMessage  = "assigned midwife retrieved successfully"
	AssignMidwifeSuccessMessage = "midwife assigned successfully"

	// Products
	GetProductsSuccessMessage          = "products retrieved successfully"
	GetProductSuccessMessage           = "product retrieved successfully"
	GetProductCategoriesSuccessMessage = "product categories retrieved successfully"
	TrackProductClickSuccessMessage    = "product click tracked successfully"
	CreateProductSuccessMessage        = "product created successfully"
	UpdateProductSuccessMessage        = "product updated successfully"
	DeleteProductSuccessMessage        = "product deleted successfully"
	ReviewProductSuccessMessage        = "product reviewed successfully"

	// Chat
	GetConversationsSuccessMessage     = "conversations retrieved successfully"
	GetChatMessagesSuccessMessage      = "messages retrieved successfully"
	SendChatMessageSuccessMessage      = "message sent successfully"
	MarkConversationReadSuccessMessage = "messages marked as read"
	DeleteChatMessageSuccessMessage    = "message deleted successfully"
	GetUnreadCountSuccessMessage       = "unread count retrieved successfully"

	// Medical reports
	GetMedicalReportsSuccessMessage   = "medical reports retrieved successfully"
	GetReportedPatientsSuccessMessage = "patients retrieved successfully"
	CreateMedicalReportSuccessMessage = "medical report created successfully"
	UpdateMedicalReportSuccessMessage = "medical report updated successfully"
	DeleteMedicalReportSuccessMessage = "medical report deleted successfully"

	// Misc
	HealthCheckSuccessMessage = "service is healthy"
)
