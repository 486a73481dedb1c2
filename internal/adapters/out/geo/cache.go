package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefixGeocode = "geo:geocode"
	keyPrefixRoute   = "geo:route"

	DefaultCacheTTL = 7 * 24 * time.Hour
)

// CachedProvider remembers successful geocode and route lookups in redis.
// Failures are never cached. A broken redis only costs performance: reads and
// writes that fail are logged and the lookup goes to the wrapped provider.
type CachedProvider struct {
	next   ports.DistanceProvider
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedProvider(next ports.DistanceProvider, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "geo_cache"),
	}
}

type cachedLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func (c *CachedProvider) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	key := fmt.Sprintf("%s:%s", keyPrefixGeocode, normalize(address))

	var hit cachedLocation
	if c.get(ctx, key, &hit) {
		location, err := kernel.NewCoordinates(hit.Latitude, hit.Longitude)
		if err == nil {
			return location, nil
		}
		c.logger.WarnContext(ctx, "discarding corrupt cache entry", "key", key, "error", err)
	}

	location, err := c.next.Geocode(ctx, address)
	if err != nil {
		return kernel.Coordinates{}, err
	}

	c.set(ctx, key, cachedLocation{Latitude: location.Latitude(), Longitude: location.Longitude()})
	return location, nil
}

func (c *CachedProvider) RouteDistance(
	ctx context.Context,
	from, to kernel.Coordinates,
	profile kernel.RouteProfile,
) (float64, error) {
	key := fmt.Sprintf("%s:%s:%.6f,%.6f:%.6f,%.6f", keyPrefixRoute, profile,
		from.Latitude(), from.Longitude(), to.Latitude(), to.Longitude())

	var km float64
	if c.get(ctx, key, &km) && km >= 0 {
		return km, nil
	}

	km, err := c.next.RouteDistance(ctx, from, to, profile)
	if err != nil {
		return 0, err
	}

	c.set(ctx, key, km)
	return km, nil
}

func (c *CachedProvider) get(ctx context.Context, key string, dest any) bool {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(val, dest); err != nil {
		c.logger.WarnContext(ctx, "cache entry is not valid json", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CachedProvider) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
