package middlewares

import (
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

var errGlobalRateLimit = errors.New("global per-ip limit reached")

// GlobalRateLimit applies APP_MAX_REQUEST requests per second per client IP.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errGlobalRateLimit))
		}),
	)
}
