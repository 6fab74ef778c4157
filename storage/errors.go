package storage

import "errors"

// Construction-time configuration errors. Unlike miss/capacity outcomes,
// these are not part of the steady-state
// Storage contract — they surface once, from NewStriped, and the caller is
// expected to treat them as a setup bug rather than something to retry.
var (
	// ErrNoStripes is returned when StripedConfig.StripeCount is zero.
	ErrNoStripes = errors.New("storage: stripe count must be greater than zero")

	// ErrShardTooSmall is returned when MaxBytes/StripeCount falls below
	// DefaultMinShardBytes (or the configured StripedConfig.MinShardBytes floor).
	ErrShardTooSmall = errors.New("storage: per-shard byte budget is below the minimum floor")
)
