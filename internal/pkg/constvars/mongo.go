package constvars

const (
	MongoCollectionUsers               = "users"
	MongoCollectionVaccinationRecords  = "vaccination_records"
	MongoCollectionClinicVisitRequests = "clinic_visit_requests"
	MongoCollectionMidwifeAssignments  = "midwife_assignments"
	MongoCollectionProducts            = "products"
	MongoCollectionConversations       = "conversations"
	MongoCollectionChatMessages        = "chat_messages"
	MongoCollectionMedicalReports      = "medical_reports"
)

const (
	RedisKeyProductCategories       = "products:categories"
	RedisKeyForgotPasswordPrefix    = "forgot_password:"
	RedisKeySessionPrefix           = "session:"
	RedisKeyVaccinationWorkerLeader = "vaccinations:sweeper:leader"
)

const (
	RateLimitGroupForgotPassword = "FORGOT_PASSWORD"
)
