package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"oneof":      "must be one of [%s]",
	"base64":     "must be a valid base64 string",
	"dive":       "is invalid",
	"slot_label": "must not be blank",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientUnauthenticated               = "unauthorized access"
	ErrClientForbidden                     = "forbidden access"
	ErrClientAccountNotFound               = "account not found"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientInvalidImage                  = "image is not a valid base64 encoded picture"
	ErrClientResourceConflict              = "the resource already exists"
	ErrClientIdempotencyKeyReused          = "idempotency key was already used for a different request"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamValidationFailed   = "url param %s validation failed"
	ErrDevQueryParamValidationFailed = "query param %s validation failed"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevAuthTokenMissing           = "authorization bearer token missing"
	ErrDevAuthTokenInvalidOrExpired  = "token is invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthNotAdmin               = "identity does not hold the admin role"
	ErrDevAuthNotResourceOwner       = "identity does not own the requested resource"
	ErrDevAuthAccountNotFound        = "no account found for identity"
	ErrDevAuthIdentityMissing        = "identity missing from request context"
	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToCreateIndex      = "database failed to create index"
	ErrDevDBDuplicateKey             = "database rejected a duplicate key"
	ErrDevRedisGetData               = "redis failed to get data"
	ErrDevRedisSetData               = "redis failed to set data"
	ErrDevRabbitMQPublishMessage     = "rabbitmq failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject  = "minio failed to create object in bucket %s"
	ErrDevImageDecodeFailed          = "failed to decode base64 image"
	ErrDevRateLimitExceeded          = "rate limit exceeded"
	ErrDevIdempotencyKeyMismatch     = "idempotency key fingerprint does not match the stored request"
)
