// internal/infrastructure/cache/snapshot.go
package cache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/infrastructure/cache/redis"
	"github.com/your-org/storefront-gateway/internal/shopapi"
)

const (
	catalogKey      = "snapshot:catalog"
	availabilityKey = "snapshot:availability"
)

// SnapshotCache keeps short-lived copies of the two shared read-only
// snapshots every storefront view needs: the catalog and the availability
// set. It replaces per-caller request deduplication with a TTL bound on
// staleness; a cache miss or a Redis failure falls through to the remote
// API.
type SnapshotCache struct {
	redis  *redis.Client
	shop   *shopapi.Client
	logger *logrus.Logger

	catalogTTL      time.Duration
	availabilityTTL time.Duration
}

// NewSnapshotCache creates a new snapshot cache
func NewSnapshotCache(redisClient *redis.Client, shop *shopapi.Client, cfg *config.Config, logger *logrus.Logger) *SnapshotCache {
	return &SnapshotCache{
		redis:           redisClient,
		shop:            shop,
		logger:          logger,
		catalogTTL:      cfg.Cache.CatalogTTL,
		availabilityTTL: cfg.Cache.AvailabilityTTL,
	}
}

// Catalog returns the catalog snapshot, serving from cache when fresh
func (s *SnapshotCache) Catalog(ctx context.Context) (*shopapi.CatalogResponse, error) {
	var cached shopapi.CatalogResponse
	err := s.redis.GetJSON(ctx, catalogKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, goredis.Nil) {
		s.logger.WithError(err).Warn("Catalog cache read failed, falling through to shop API")
	}

	resp, err := s.shop.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.redis.SetJSON(ctx, catalogKey, resp, s.catalogTTL); err != nil {
		s.logger.WithError(err).Warn("Catalog cache write failed")
	}

	return resp, nil
}

// Availability returns the available item id set, serving from cache when
// fresh.
func (s *SnapshotCache) Availability(ctx context.Context) (*shopapi.AvailabilityResponse, error) {
	var cached shopapi.AvailabilityResponse
	err := s.redis.GetJSON(ctx, availabilityKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, goredis.Nil) {
		s.logger.WithError(err).Warn("Availability cache read failed, falling through to shop API")
	}

	resp, err := s.shop.GetItemsAvailability(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.redis.SetJSON(ctx, availabilityKey, resp, s.availabilityTTL); err != nil {
		s.logger.WithError(err).Warn("Availability cache write failed")
	}

	return resp, nil
}

// Invalidate drops both snapshots, forcing the next read to refetch
func (s *SnapshotCache) Invalidate(ctx context.Context) error {
	return s.redis.Redis.Del(ctx, catalogKey, availabilityKey).Err()
}
