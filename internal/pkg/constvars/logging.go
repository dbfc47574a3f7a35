package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingEmailKey          = "email"
	LoggingDateKey           = "date"
	LoggingTreatmentKey      = "treatment"
	LoggingBookingIDKey      = "booking_id"
	LoggingServicesCountKey  = "services_count"
	LoggingBookingsCountKey  = "bookings_count"
	LoggingBucketKey         = "bucket"
	LoggingMatchedCountKey   = "matched_count"
	LoggingModifiedCountKey  = "modified_count"
	LoggingDeletedCountKey   = "deleted_count"
	LoggingUpsertedKey       = "upserted"
	LoggingResponseLengthKey = "response_length"
)

const (
	ErrorTypeDatabase    = "database"
	ErrorTypeAuth        = "auth"
	ErrorTypeCache       = "cache"
	ErrorTypeMessaging   = "messaging"
	ErrorTypeObjectStore = "object_store"
	ErrorTypeConflict    = "conflict"
)
