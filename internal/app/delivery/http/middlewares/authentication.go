package middlewares

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and stores the identity in the request context.
// No handler or store is reached when verification fails.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		identity, err := m.TokenManager.Verify(r.Header.Get(constvars.HeaderAuthorization))
		if err != nil {
			utils.LogSecurityEvent(m.Log, "token_rejected", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_KEY, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin runs after Authenticate and lets only admin accounts through.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrIdentityMissing(nil))
			return
		}

		err := m.AccessPolicy.AuthorizeAdmin(r.Context(), identity)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func GetIdentity(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
	return identity, ok && identity != nil
}
