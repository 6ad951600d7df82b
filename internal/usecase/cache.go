package usecase

import (
	"context"
	"time"
)

// RecommendationCache is the minimal cache surface the usecases need. The
// redis adapter degrades to a no-op when the server is unreachable, so a nil
// or bypassed cache must never fail a request.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
