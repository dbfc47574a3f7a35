package redis

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type idempotencyStore struct {
	repository contracts.RedisRepository
	ttl        time.Duration
}

// NewIdempotencyStore keeps replayable responses under a fixed key prefix for ttl.
func NewIdempotencyStore(repository contracts.RedisRepository, ttl time.Duration) contracts.IdempotencyStore {
	if ttl <= 0 {
		ttl = constvars.IdempotencyRecordTTLInHour * time.Hour
	}
	return &idempotencyStore{
		repository: repository,
		ttl:        ttl,
	}
}

func (s *idempotencyStore) Lookup(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := s.repository.Get(ctx, constvars.IdempotencyKeyPrefix+key)
	if err != nil {
		return false, err
	}
	if data == "" {
		return false, nil
	}

	err = json.Unmarshal([]byte(data), out)
	if err != nil {
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}

// Remember only writes the first response for a key; a concurrent duplicate keeps the earlier one.
func (s *idempotencyStore) Remember(ctx context.Context, key string, value interface{}) error {
	_, err := s.repository.TrySetNX(ctx, constvars.IdempotencyKeyPrefix+key, value, s.ttl)
	return err
}
