package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
)

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Issue(email string) (string, error)
	Verify(rawHeader string) (*models.Identity, error)
}

type AccessPolicy interface {
	AuthorizeAdmin(ctx context.Context, identity *models.Identity) error
	IsSelf(identity *models.Identity, email string) bool
}
