package config

import (
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			NotificationQueue:          utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "appointment-notifications"),
		},
		Upstream: Upstream{
			PatientBaseURL:     utils.GetEnvString("UPSTREAM_PATIENT_BASE_URL", "http://localhost:8081"),
			AppointmentBaseURL: utils.GetEnvString("UPSTREAM_APPOINTMENT_BASE_URL", "http://localhost:8082"),
			RequestTimeout:     utils.GetEnvInt("UPSTREAM_REQUEST_TIMEOUT_IN_SECOND", 10),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Momo: Momo{
			PartnerCode: utils.GetEnvString("MOMO_PARTNER_CODE", "MOMO"),
			AccessKey:   utils.GetEnvString("MOMO_ACCESS_KEY", ""),
			SecretKey:   utils.GetEnvString("MOMO_SECRET_KEY", ""),
			Endpoint:    utils.GetEnvString("MOMO_ENDPOINT", "https://test-payment.momo.vn/v2/gateway/api/create"),
			RedirectURL: utils.GetEnvString("MOMO_REDIRECT_URL", "http://localhost:8080/api/v1/payments/momo/callback"),
			IpnURL:      utils.GetEnvString("MOMO_IPN_URL", "http://localhost:8080/api/v1/payments/momo/callback"),
			RequestType: utils.GetEnvString("MOMO_REQUEST_TYPE", constvars.MomoRequestTypeCaptureWallet),
			Lang:        utils.GetEnvString("MOMO_LANG", "vi"),
		},
		Payment: Payment{
			PendingTTLInMinute:        utils.GetEnvInt("PAYMENT_PENDING_TTL_IN_MINUTE", constvars.PendingPaymentTTLMinutes),
			RedirectCountdownInSecond: utils.GetEnvInt("PAYMENT_REDIRECT_COUNTDOWN_IN_SECOND", constvars.RedirectCountdownSeconds),
			CancelGraceInSecond:       utils.GetEnvInt("PAYMENT_CANCEL_GRACE_IN_SECOND", constvars.CancelGraceSeconds),
			CallbackRequestsPerSecond: utils.GetEnvInt("PAYMENT_CALLBACK_REQUESTS_PER_SECOND", 5),
		},
	}
}
