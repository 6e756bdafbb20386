// Package journeycache keeps product journeys in Redis between reads.
// Entries expire after a TTL and are deleted whenever the product's ledger
// changes.
//
// Each product also has a version counter that Invalidate increments. A
// reader takes the version before loading from the database and Set writes
// only if it is still current, checked under WATCH. Both keys of a product
// share a hash tag so the transaction stays on one cluster slot.
package journeycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "journey:"

// Cache implements queries.JourneyCache and commands.JourneyInvalidator.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key returns the Redis key of a product's journey.
func Key(productID kernel.UUID) string {
	return keyPrefix + "{" + productID.String() + "}"
}

// VersionKey returns the Redis key of a product's journey version. It has no
// expiry; a reset to zero could let a stale fill through.
func VersionKey(productID kernel.UUID) string {
	return Key(productID) + ":version"
}

// Get reports found == false on a miss. An undecodable entry is deleted and
// reported as an error so the caller reads the database.
func (c *Cache) Get(ctx context.Context, productID kernel.UUID) ([]queries.GetProductJourneyQueryResponse, bool, error) {
	raw, err := c.client.Get(ctx, Key(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	journey, err := decode(raw)
	if err != nil {
		_ = c.client.Del(ctx, Key(productID)).Err()
		return nil, false, fmt.Errorf("decode journey %s: %w", productID.String(), err)
	}

	return journey, true, nil
}

// Version returns the product's journey version, zero if it was never
// invalidated.
func (c *Cache) Version(ctx context.Context, productID kernel.UUID) (int64, error) {
	return readVersion(ctx, c.client, productID)
}

// Set stores the journey if the product's version still equals version. A
// stale fill is dropped silently, as is one that loses the WATCH race.
func (c *Cache) Set(
	ctx context.Context,
	productID kernel.UUID,
	version int64,
	journey []queries.GetProductJourneyQueryResponse,
) error {
	dtos := make([]recordDTO, 0, len(journey))
	for _, r := range journey {
		dtos = append(dtos, fromResponse(r))
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, readErr := readVersion(ctx, tx, productID)
		if readErr != nil {
			return readErr
		}
		if current != version {
			return nil
		}

		_, pipeErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(productID), raw, c.ttl)
			return nil
		})
		return pipeErr
	}, VersionKey(productID))
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate bumps the version and deletes the cached journey in one
// MULTI/EXEC. Invalidating a missing entry is not an error.
func (c *Cache) Invalidate(ctx context.Context, productID kernel.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, VersionKey(productID))
		pipe.Del(ctx, Key(productID))
		return nil
	})
	return err
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readVersion(ctx context.Context, g getter, productID kernel.UUID) (int64, error) {
	version, err := g.Get(ctx, VersionKey(productID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func decode(raw []byte) ([]queries.GetProductJourneyQueryResponse, error) {
	var dtos []recordDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	journey := make([]queries.GetProductJourneyQueryResponse, 0, len(dtos))
	for _, d := range dtos {
		r, err := d.toResponse()
		if err != nil {
			return nil, err
		}
		journey = append(journey, r)
	}
	return journey, nil
}
