package cache

import (
	"context"
	"time"

	"github.com/shihan84/cg-overlay/internal/domain"
)

// OverlayCacheResult wraps a cached overlay catalog entry.
type OverlayCacheResult struct {
	Overlay domain.Overlay `json:"overlay"`
}

// OverlayCache is a read-through cache for overlay catalog entries.
// Cache misses fall back to the repository; a nil cache is valid and
// means caching is disabled.
type OverlayCache interface {
	Get(ctx context.Context, key string) (*OverlayCacheResult, error)
	Set(ctx context.Context, key string, result *OverlayCacheResult, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	BuildKeyByID(overlayID string) string
	Close() error
}
