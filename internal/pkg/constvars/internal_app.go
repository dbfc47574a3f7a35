package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
)

const (
	REQUEST_ID_PREFIX = "DRPTL_SVC_"
)

// An account without a role is a patient.
const RoleAdmin = "admin"

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	IdempotencyKeyPrefix       = "booking:idempotency:"
	IdempotencyRecordTTLInHour = 24
	DoctorImageObjectPrefix    = "doctor"
	BookingCreatedMessageType  = "booking.created"
)
