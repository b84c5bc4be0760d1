package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"eqfield":          "must match %s",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"url":              "must be a valid URL",
	"base64":           "must be a valid base64 string",
	"date_only":        "must be a valid date in YYYY-MM-DD format",
	"request_type":     "must be a valid request type",
	"preferred_time":   "must be one of [Morning, Afternoon, Evening, Any Time]",
	"product_category": "must be a valid product category",
	"http_url":         "must start with http:// or https://",
	"user_role":        "must be one of [mom, doctor, midwife, service_provider]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lte":     true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest           = "failed to process your request"
	ErrClientSomethingWrongWithApplication  = "there is something wrong with the application"
	ErrClientServerLongRespond              = "the app taking too long to respond"
	ErrClientDatabaseUnavailable            = "database is temporarily unavailable, please try again later"
	ErrClientServiceUnavailable             = "service is temporarily unavailable, please try again later"
	ErrClientNotAuthorized                  = "Not authorized to access this route"
	ErrClientRoleNotAuthorized              = "User role %s is not authorized to access this route"
	ErrClientNotLoggedIn                    = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword         = "invalid email or password"
	ErrClientEmailAlreadyExists             = "email already used"
	ErrClientAccountDeactivated             = "your account has been deactivated"
	ErrClientResetPasswordTokenExpired      = "reset password link is invalid or expired"
	ErrClientTooManyRequests                = "too many requests, you are temporarily blocked"
	ErrClientInvalidBirthDate               = "baby birth date must be a valid date in YYYY-MM-DD format"
	ErrClientBirthDateInFuture              = "baby birth date cannot be in the future"
	ErrClientVaccinationsAlreadyInitialized = "vaccination schedule already initialized"
	ErrClientVaccineNotInSchedule           = "vaccine %s is not part of your vaccination schedule"
	ErrClientVaccinationRecordNotFound      = "vaccination record not found"
	ErrClientVaccinationAlreadyCompleted    = "vaccination already marked as completed"
	ErrClientClinicVisitRequestNotFound     = "clinic visit request not found"
	ErrClientClinicVisitRequestNotPending   = "only pending requests can be modified"
	ErrClientClinicVisitRequestFinalized    = "request has already been reviewed"
	ErrClientUserNotFound                   = "user not found"
	ErrClientUserNotMidwife                 = "selected user is not an active midwife"
	ErrClientUserNotMom                     = "selected user is not an active mom"
	ErrClientMidwifeNotAssigned             = "no midwife assigned yet"
	ErrClientProductNotFound                = "product not found"
	ErrClientInvalidImageFormat             = "image must be a base64 encoded image"
	ErrClientConversationNotFound           = "conversation not found"
	ErrClientChatAccessDenied               = "you are not a participant of this conversation"
	ErrClientChatMessageNotFound            = "message not found"
	ErrClientChatMessageNotOwned            = "you can only delete your own messages"
	ErrClientChatRecipientNotFound          = "recipient not found"
	ErrClientChatRecipientNotAllowed        = "you cannot send messages to this user"
	ErrClientMedicalReportNotFound          = "medical report not found"
	ErrClientPatientNotFound                = "patient not found"
	ErrClientMedicalReportNotOwned          = "you can only modify your own medical reports"
)

// Error messages for developers
const (
	ErrDevInvalidInput                   = "invalid input"
	ErrDevValidationFailed               = "validation failed"
	ErrDevCannotParseJSON                = "cannot parse JSON"
	ErrDevCannotMarshalJSON              = "cannot marshal JSON"
	ErrDevCannotParseDate                = "cannot parse date"
	ErrDevURLParamIDValidationFailed     = "URL param %s validation failed"
	ErrDevFailedToHashPassword           = "failed to hash password"
	ErrDevInvalidCredentials             = "invalid credentials"
	ErrDevEmailAlreadyExists             = "email already exists"
	ErrDevAccountDeactivated             = "account is inactive"
	ErrDevUserNotExists                  = "user does not exist"
	ErrDevRoleTypeDoesntMatch            = "role type doesn't match"
	ErrDevMissingRequestID               = "request id missing from context"
	ErrDevMissingSessionData             = "session data missing from context"
	ErrDevServerProcess                  = "server failed to process the request"
	ErrDevServerDeadlineExceeded         = "server deadline exceeded"
	ErrDevTooManyRequests                = "client exceeded the rate limit"
	ErrDevImageValidationFailed          = "image validation failed"
	ErrDevBirthDateInFuture              = "birth date is after current date"
	ErrDevVaccinationsAlreadyInitialized = "vaccination records already exist for mother"
	ErrDevVaccineNotInSchedule           = "vaccine name does not match any vaccination record"
	ErrDevVaccinationRecordNotFound      = "vaccination record not found or not owned by mother"
	ErrDevVaccinationAlreadyCompleted    = "vaccination record status already completed"
	ErrDevClinicVisitRequestNotFound     = "clinic visit request not found or not owned by requester"
	ErrDevClinicVisitRequestNotPending   = "clinic visit request is not pending"
	ErrDevClinicVisitRequestFinalized    = "clinic visit request already in terminal status"
	ErrDevMidwifeNotFound                = "midwife user not found or inactive"
	ErrDevMomNotFound                    = "mom user not found or inactive"
	ErrDevMidwifeNotAssigned             = "mom has no active midwife assignment"
	ErrDevProductNotFound                = "product not found or not owned by service provider"
	ErrDevWebsocketUpgrade               = "failed to upgrade connection to websocket"
	ErrDevConversationNotFound           = "conversation not found"
	ErrDevChatAccessDenied               = "user is not a conversation participant"
	ErrDevChatMessageNotFound            = "chat message not found"
	ErrDevChatMessageNotOwned            = "chat message sender does not match user"
	ErrDevChatRecipientNotFound          = "chat recipient not found or inactive"
	ErrDevChatRecipientNotAllowed        = "chat pair has no provider participant"
	ErrDevMedicalReportNotFound          = "medical report not found or not owned by doctor"
	ErrDevPatientNotFound                = "patient user not found, inactive or not a mom"
	ErrDevMedicalReportNotOwned          = "medical report doctor does not match user"

	// Auth
	ErrDevAuthTokenMissing          = "auth token missing"
	ErrDevAuthTokenInvalid          = "auth token invalid"
	ErrDevAuthTokenInvalidOrExpired = "auth token invalid or expired"
	ErrDevAuthTokenExpired          = "auth token expired"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthInvalidSession        = "session not found"

	// Database
	ErrDevDBUnavailable              = "database unavailable"
	ErrDevDependencyUnavailable      = "dependency %s is unavailable"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToAggregate        = "failed to aggregate documents"
	ErrDevDBFailedToCreateIndex      = "failed to create index"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"

	// Redis
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisExpire     = "failed to set expiry on redis key"
	ErrDevRedisUnlock     = "failed to unlock redis lock"
	ErrDevRedisIncrement  = "failed to increment redis counter"
	ErrDevRedisEval       = "failed to run redis script"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToGetObjectURL = "failed to create presigned URL on bucket %s"
	ErrDevMinioFailedToDeleteObject = "failed to delete object on bucket %s"
)
