package jwtmanager

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const defaultTokenTTL = 5 * time.Hour

var (
	errEmptySecret       = errors.New("jwt secret is empty")
	errMissingHeader     = errors.New("authorization header is missing")
	errMalformedHeader   = errors.New("authorization header is not a bearer token")
	errMissingEmailClaim = errors.New("token carries no email claim")
)

// Claims is the token payload. Only the email identifies the subject.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 bearer tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig) (*JWTManager, error) {
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, errEmptySecret
	}

	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &JWTManager{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token embedding email with iat=now and exp=now+ttl.
// Earlier tokens for the same email stay valid until they expire.
func (j *JWTManager) Issue(email string) (string, error) {
	now := j.now().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

// Verify parses "Bearer <token>". A missing or malformed header is Unauthenticated,
// any signature, expiry or claim failure is Forbidden.
func (j *JWTManager) Verify(rawHeader string) (*models.Identity, error) {
	if strings.TrimSpace(rawHeader) == "" {
		return nil, exceptions.ErrTokenMissing(errMissingHeader)
	}
	if !strings.HasPrefix(rawHeader, constvars.AuthorizationBearerPrefix) {
		return nil, exceptions.ErrTokenMissing(errMalformedHeader)
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(rawHeader, constvars.AuthorizationBearerPrefix))
	if tokenString == "" {
		return nil, exceptions.ErrTokenMissing(errMalformedHeader)
	}

	claims := new(Claims)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, claims, j.keyFunc)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(j.now()) {
		return nil, exceptions.ErrTokenInvalidOrExpired(jwt.ErrTokenExpired)
	}
	if claims.Email == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(errMissingEmailClaim)
	}

	identity := &models.Identity{
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	return identity, nil
}

func (j *JWTManager) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return j.secret, nil
}
