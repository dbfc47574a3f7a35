package auth

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type accessPolicy struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewAccessPolicy(userRepository contracts.UserRepository, logger *zap.Logger) contracts.AccessPolicy {
	return &accessPolicy{
		UserRepository: userRepository,
		Log:            logger,
	}
}

// AuthorizeAdmin must only be called with an identity produced by token verification.
// It returns nil for admins, an AccountNotFound error when the email has no account,
// and a Forbidden error otherwise. Directory failures are returned unchanged.
func (p *accessPolicy) AuthorizeAdmin(ctx context.Context, identity *models.Identity) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if identity == nil {
		return exceptions.ErrIdentityMissing(nil)
	}

	user, err := p.UserRepository.FindByEmail(ctx, identity.Email)
	if err != nil {
		p.Log.Error("accessPolicy.AuthorizeAdmin error looking up account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeDatabase),
			zap.Error(err),
		)
		return err
	}

	if user == nil {
		p.Log.Warn("accessPolicy.AuthorizeAdmin account not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, identity.Email),
		)
		return exceptions.ErrIdentityAccountNotFound(nil)
	}

	if !user.IsAdmin() {
		p.Log.Warn("accessPolicy.AuthorizeAdmin denied",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, identity.Email),
		)
		return exceptions.ErrNotAdmin(nil)
	}

	return nil
}

// IsSelf is exact string equality; emails are not normalised.
func (p *accessPolicy) IsSelf(identity *models.Identity, email string) bool {
	return identity != nil && identity.Email == email
}
