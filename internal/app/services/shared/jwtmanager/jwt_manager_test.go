package jwtmanager

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(&config.InternalConfig{
		JWT: config.AppJWT{Secret: testSecret, ExpTimeInHour: 5},
	})
	require.NoError(t, err)
	return manager
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "error should be a CustomError")
	assert.Equal(t, status, customErr.StatusCode)
}

func TestNewJWTManager_RejectsEmptySecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{Secret: "  "}})
	assert.Error(t, err)
}

func TestJWTManager_IssueThenVerify(t *testing.T) {
	manager := newTestManager(t)

	token, err := manager.Issue("a@x.com")
	require.NoError(t, err)

	identity, err := manager.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.WithinDuration(t, identity.IssuedAt.Add(5*time.Hour), identity.ExpiresAt, time.Second, "token should live five hours")
}

func TestJWTManager_VerifyUnauthenticated(t *testing.T) {
	manager := newTestManager(t)
	token, err := manager.Issue("a@x.com")
	require.NoError(t, err)

	headers := map[string]string{
		"missing header":     "",
		"no bearer prefix":   token,
		"wrong scheme":       "Basic " + token,
		"bearer with no jwt": "Bearer ",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			identity, err := manager.Verify(header)
			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, exceptions.ErrUnauthenticated), "should be unauthenticated")
			assertStatus(t, err, 401)
		})
	}
}

func TestJWTManager_VerifyForbidden(t *testing.T) {
	manager := newTestManager(t)

	t.Run("signed with another secret", func(t *testing.T) {
		other, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{Secret: "another-secret", ExpTimeInHour: 5}})
		require.NoError(t, err)
		token, err := other.Issue("a@x.com")
		require.NoError(t, err)

		_, err = manager.Verify("Bearer " + token)
		assert.True(t, errors.Is(err, exceptions.ErrForbidden))
		assertStatus(t, err, 403)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newTestManager(t)
		expired.now = func() time.Time { return time.Now().Add(-6 * time.Hour) }
		token, err := expired.Issue("a@x.com")
		require.NoError(t, err)

		_, err = manager.Verify("Bearer " + token)
		assert.True(t, errors.Is(err, exceptions.ErrForbidden))
		assertStatus(t, err, 403)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		claims := Claims{
			Email: "a@x.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = manager.Verify("Bearer " + token)
		assertStatus(t, err, 403)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Verify("Bearer not-a-jwt")
		assertStatus(t, err, 403)
	})

	t.Run("missing email claim", func(t *testing.T) {
		token, err := manager.Issue("")
		require.NoError(t, err)

		_, err = manager.Verify("Bearer " + token)
		assertStatus(t, err, 403)
	})
}

func TestJWTManager_ReissueDoesNotRevoke(t *testing.T) {
	manager := newTestManager(t)

	first, err := manager.Issue("a@x.com")
	require.NoError(t, err)
	_, err = manager.Issue("a@x.com")
	require.NoError(t, err)

	identity, err := manager.Verify("Bearer " + first)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity.Email)
}
