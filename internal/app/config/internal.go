package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
	// UserUpsertRatePerSecond throttles the token-issuing user upsert per client IP
	UserUpsertRatePerSecond int
	UserUpsertBurst         int
	IdempotencyTTLInHours   int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                   string
	DoctorImageMaxUploadSizeInMB int
	DoctorImageAllowedFormatsCSV string
}

type AppRabbitMQ struct {
	BookingQueue string
}
