package ratelimit

import "context"

// RateLimiter bounds how often a keyed action may happen inside a
// sliding window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
