package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"unistay/internal/pkg/config"
	"unistay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache fronts the calendar read path. Entries are keyed by
// property and queried window; any write that touches a property's calendar
// invalidates the whole property prefix.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(cfg config.RedisConfig) *AvailabilityCache {
	return &AvailabilityCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    cfg.AvailabilityTTL,
	}
}

func (c *AvailabilityCache) Get(ctx context.Context, propertyID uuid.UUID, from, until time.Time) (*queries.AvailabilityView, error) {
	data, err := c.client.Get(ctx, availabilityKey(propertyID, from, until)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var view queries.AvailabilityView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, view *queries.AvailabilityView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}
	key := availabilityKey(view.PropertyID, view.From, view.Until)
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Invalidate drops every cached window for the property. Called after
// booking creation, cancellation, and host blocks.
func (c *AvailabilityCache) Invalidate(ctx context.Context, propertyID uuid.UUID) {
	pattern := fmt.Sprintf("availability:%s:*", propertyID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("failed to invalidate availability cache key", "key", iter.Val(), "error", err.Error())
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("availability cache invalidation scan failed", "property_id", propertyID.String(), "error", err.Error())
	}
}

func (c *AvailabilityCache) Close() error {
	return c.client.Close()
}

func availabilityKey(propertyID uuid.UUID, from, until time.Time) string {
	return fmt.Sprintf("availability:%s:%s:%s", propertyID, from.Format("2006-01-02"), until.Format("2006-01-02"))
}
