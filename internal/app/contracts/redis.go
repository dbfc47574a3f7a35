package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}

// IdempotencyStore remembers the response of a keyed request for replay.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string, out interface{}) (found bool, err error)
	Remember(ctx context.Context, key string, value interface{}) error
}
