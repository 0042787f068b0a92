package config

type (
	InternalConfig struct {
		App      App
		Upstream Upstream
		JWT      JWT
		Momo     Momo
		Payment  Payment
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		NotificationQueue          string
	}

	Upstream struct {
		PatientBaseURL     string
		AppointmentBaseURL string
		RequestTimeout     int
	}

	JWT struct {
		Secret string
	}

	Momo struct {
		PartnerCode string
		AccessKey   string
		SecretKey   string
		Endpoint    string
		RedirectURL string
		IpnURL      string
		RequestType string
		Lang        string
	}

	Payment struct {
		PendingTTLInMinute        int
		RedirectCountdownInSecond int
		CancelGraceInSecond       int
		CallbackRequestsPerSecond int
	}
)
