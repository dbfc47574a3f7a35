package middlewares

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/app/services/shared/jwtmanager"
	"doctors-portal-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAccessPolicy struct {
	mock.Mock
}

func (m *MockAccessPolicy) AuthorizeAdmin(ctx context.Context, identity *models.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

func (m *MockAccessPolicy) IsSelf(identity *models.Identity, email string) bool {
	return m.Called(identity, email).Bool(0)
}

func newTestMiddlewares(t *testing.T, policy *MockAccessPolicy) (*Middlewares, *jwtmanager.JWTManager) {
	t.Helper()
	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: "middleware-secret", ExpTimeInHour: 5},
	}
	tokens, err := jwtmanager.NewJWTManager(internalConfig)
	require.NoError(t, err)
	return NewMiddlewares(zap.NewNop(), tokens, policy, internalConfig), tokens
}

// reached records whether the guarded handler ran and which identity it saw.
type reached struct {
	called   bool
	identity *models.Identity
}

func (rc *reached) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc.called = true
		rc.identity, _ = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	mw, tokens := newTestMiddlewares(t, new(MockAccessPolicy))
	valid, err := tokens.Issue("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer header", header: "Token " + valid, wantStatus: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + valid + "x", wantStatus: http.StatusForbidden},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := new(reached)
			req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate(rc.handler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, rc.called)
			if tt.wantCalled {
				require.NotNil(t, rc.identity)
				assert.Equal(t, "a@x.com", rc.identity.Email)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		policyErr  error
		wantStatus int
		wantCalled bool
	}{
		{name: "admin", policyErr: nil, wantStatus: http.StatusOK, wantCalled: true},
		{name: "not admin", policyErr: exceptions.ErrNotAdmin(nil), wantStatus: http.StatusForbidden},
		{name: "no account", policyErr: exceptions.ErrIdentityAccountNotFound(nil), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := new(MockAccessPolicy)
			policy.On("AuthorizeAdmin", mock.Anything, mock.MatchedBy(func(identity *models.Identity) bool {
				return identity.Email == "a@x.com"
			})).Return(tt.policyErr).Once()
			mw, tokens := newTestMiddlewares(t, policy)
			token, err := tokens.Issue("a@x.com")
			require.NoError(t, err)

			rc := new(reached)
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			mw.Authenticate(mw.RequireAdmin(rc.handler())).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, rc.called)
			policy.AssertExpectations(t)
		})
	}
}

func TestRequireAdmin_WithoutIdentity(t *testing.T) {
	policy := new(MockAccessPolicy)
	mw, _ := newTestMiddlewares(t, policy)
	rc := new(reached)
	rec := httptest.NewRecorder()

	mw.RequireAdmin(rc.handler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, rc.called)
	policy.AssertNotCalled(t, "AuthorizeAdmin", mock.Anything, mock.Anything)
}

func TestAuthenticate_RejectedTokenNeverReachesPolicy(t *testing.T) {
	policy := new(MockAccessPolicy)
	mw, _ := newTestMiddlewares(t, policy)
	rc := new(reached)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	mw.Authenticate(mw.RequireAdmin(rc.handler())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, rc.called)
	policy.AssertNotCalled(t, "AuthorizeAdmin", mock.Anything, mock.Anything)
}
