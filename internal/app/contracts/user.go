package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UpsertUser, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	MakeAdmin(ctx context.Context, email string) (*responses.UpdateResult, error)
	CheckAdmin(ctx context.Context, email string) (*responses.AdminStatus, error)
}

type UserRepository interface {
	// FindByEmail returns nil, nil when no account exists.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpsertByEmail(ctx context.Context, userModel *models.User) (*models.UserUpsertResult, error)
	SetRole(ctx context.Context, email, role string) (matchedCount, modifiedCount int64, err error)
	EnsureIndexes(ctx context.Context) error
}
