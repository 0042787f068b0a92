package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientMissingBookingFields          = "Please fill in all required booking fields and select a time slot"
	ErrClientScheduleNotFound              = "The doctor's schedule is not available"
	ErrClientAppointmentCreateFailed       = "Could not create the appointment, please try again"
	ErrClientMissingAppointmentReference   = "The payment callback did not carry an appointment reference"
	ErrClientPaymentGatewayFailed          = "Could not reach the payment gateway, please try again"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again later"
)

// Developer-facing messages.
const (
	ErrDevAuthTokenMissing          = "authorization bearer token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization bearer token is invalid or expired"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON payload"
	ErrDevCannotParseTime           = "cannot parse time value"
	ErrDevCannotMarshalJSON         = "cannot marshal value to JSON"
	ErrDevCreateHTTPRequest         = "failed to build HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDecodeUpstreamResponse    = "failed to decode upstream response: %s"
	ErrDevUpstreamRejected          = "upstream service %s rejected the request"
	ErrDevPatientNotFound           = "patient not found for user"
	ErrDevScheduleNotFound          = "schedule not found for doctor"
	ErrDevAppointmentCreateFailed   = "appointment service failed to create appointment"
	ErrDevAppointmentConfirmFailed  = "appointment service failed to confirm appointment"
	ErrDevAppointmentCancelFailed   = "appointment service failed to cancel appointment"
	ErrDevMissingOrderID            = "payment callback is missing orderId"
	ErrDevPaymentGatewayRejected    = "payment gateway rejected the create-payment request"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevMongoDBFindDocument       = "failed to find document in mongodb"
	ErrDevMongoDBInsertDocument     = "failed to insert document to mongodb"
	ErrDevMongoDBUpdateDocument     = "failed to update document in mongodb"
	ErrDevRabbitMQPublish           = "failed to publish message to queue %s"
	ErrDevServerDeadlineExceeded    = "request deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
)
