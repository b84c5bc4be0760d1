package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingErrorLocationKey      = "location"
	LoggingUserIDKey             = "user_id"
	LoggingRoleKey               = "role"
	LoggingEmailKey              = "email"
	LoggingSessionIDKey          = "session_id"
	LoggingMotherIDKey           = "mother_id"
	LoggingVaccinationIDKey      = "vaccination_record_id"
	LoggingVaccineNameKey        = "vaccine_name"
	LoggingVaccinationCountKey   = "vaccination_count"
	LoggingClinicVisitRequestKey = "clinic_visit_request_id"
	LoggingRequestTypeKey        = "request_type"
	LoggingRequestStatusKey      = "request_status"
	LoggingRequestCountKey       = "request_count"
	LoggingProviderCountKey      = "provider_count"
	LoggingMidwifeIDKey          = "midwife_id"
	LoggingMomIDKey              = "mom_id"
	LoggingProductIDKey          = "product_id"
	LoggingProductCountKey       = "product_count"
	LoggingCategoryKey           = "category"
	LoggingCategoryCountKey      = "category_count"
	LoggingRedisKey              = "redis_key"
	LoggingQueueNameKey          = "queue_name"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingNotificationTypeKey   = "notification_type"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingAffectedCountKey      = "affected_count"
	LoggingClientCountKey        = "client_count"
	LoggingConversationIDKey     = "conversation_id"
	LoggingChatMessageIDKey      = "chat_message_id"
	LoggingRecipientIDKey        = "recipient_id"
	LoggingMessageCountKey       = "message_count"
	LoggingConversationCountKey  = "conversation_count"
	LoggingMedicalReportIDKey    = "medical_report_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingReportCountKey        = "report_count"
)
