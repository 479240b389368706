package adapter

import (
	"context"
	"time"
)

// DashboardCache stores computed dashboard snapshots.
type DashboardCache interface {
	// Get decodes the value stored under key into dest. It returns false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
