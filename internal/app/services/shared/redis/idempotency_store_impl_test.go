package redis

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestIdempotencyStore_Lookup(t *testing.T) {
	ctx := context.Background()
	stored, err := json.Marshal(models.BookingResult{Success: true, ID: "id-1"})
	require.NoError(t, err)

	repo := new(MockRedisRepository)
	repo.On("Get", ctx, "booking:idempotency:hit").Return(string(stored), nil)
	repo.On("Get", ctx, "booking:idempotency:miss").Return("", nil)
	repo.On("Get", ctx, "booking:idempotency:corrupt").Return("{", nil)
	store := NewIdempotencyStore(repo, time.Hour)

	t.Run("hit", func(t *testing.T) {
		result := new(models.BookingResult)
		found, err := store.Lookup(ctx, "hit", result)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, &models.BookingResult{Success: true, ID: "id-1"}, result)
	})

	t.Run("miss", func(t *testing.T) {
		found, err := store.Lookup(ctx, "miss", new(models.BookingResult))
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("corrupt record", func(t *testing.T) {
		found, err := store.Lookup(ctx, "corrupt", new(models.BookingResult))
		assert.False(t, found)
		assert.Error(t, err)
	})
}

func TestIdempotencyStore_LookupRedisFailure(t *testing.T) {
	ctx := context.Background()
	redisErr := exceptions.ErrRedisGet(errors.New("connection refused"))
	repo := new(MockRedisRepository)
	repo.On("Get", ctx, "booking:idempotency:k").Return("", redisErr)

	found, err := NewIdempotencyStore(repo, time.Hour).Lookup(ctx, "k", new(models.BookingResult))

	assert.False(t, found)
	assert.Equal(t, redisErr, err)
}

func TestIdempotencyStore_Remember(t *testing.T) {
	ctx := context.Background()
	result := &models.BookingResult{Success: true, ID: "id-1"}
	repo := new(MockRedisRepository)
	repo.On("TrySetNX", ctx, "booking:idempotency:k", result, 2*time.Hour).Return(true, nil).Once()

	err := NewIdempotencyStore(repo, 2*time.Hour).Remember(ctx, "k", result)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestNewIdempotencyStore_DefaultTTL(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRedisRepository)
	repo.On("TrySetNX", ctx, "booking:idempotency:k", "v", 24*time.Hour).Return(false, nil).Once()

	err := NewIdempotencyStore(repo, 0).Remember(ctx, "k", "v")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
