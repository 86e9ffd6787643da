package store

import (
	"context"
	"time"
)

// Cache holds enhanced replies for a short while so repeated questions do not
// hit the model again. Implementations must be safe for concurrent use.
type Cache interface {
	// Get reports ok=false on a miss or an expired entry.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
