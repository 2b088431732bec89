package usecase

import (
	"context"
	"time"
)

// ListCache is satisfied by the Redis wrapper; a nil-safe bypass keeps every
// usecase working when Redis is down.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
