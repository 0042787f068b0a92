package constvars

type contextKey string

const (
	ContextRequestIDKey   contextKey = "request_id"
	ContextBearerTokenKey contextKey = "bearer_token"
	ContextUserIDKey      contextKey = "user_id"
)

const (
	LoggingRequestIDKey     = "request_id"
	LoggingUserIDKey        = "user_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingScheduleIDKey    = "schedule_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingCorrelationIDKey = "correlation_id"
	LoggingResultCodeKey    = "result_code"
	LoggingStateKey         = "state"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingRequestKey       = "request"
)

const ResponseUnknown = "unknown"
