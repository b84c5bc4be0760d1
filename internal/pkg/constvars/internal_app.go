package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MMYCR_SVC_"
)

const (
	AppProductPaginationUrlFormat = "%s?page=%d&limit=%d"
	AppDefaultPage                = 1
	AppDefaultProductPageSize     = 12
	AppMaxProductPageSize         = 100
	AppDateOnlyLayout             = "2006-01-02"
	AppChatPaginationUrlFormat    = "%s?page=%d&limit=%d"
	AppDefaultChatPageSize        = 50
	AppMaxChatPageSize            = 100
)

const (
	URLParamID        = "id"
	URLParamPatientID = "patientId"
)

const (
	HealthStatusUp = "up"
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)
