package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"solemate-service/internal/models"
)

const (
	cartKeyPrefix = "solemate:cart:"
	cartTTL       = 30 * 24 * time.Hour
)

// CartRepository persists each cart as a single JSON-encoded array of line
// items under one redis key per cart session.
type CartRepository struct {
	redis  *redis.Client
	logger *logrus.Entry
}

func NewCartRepository(redisClient *redis.Client, logger *logrus.Logger) *CartRepository {
	return &CartRepository{
		redis:  redisClient,
		logger: logger.WithField("component", "cart-repository"),
	}
}

func cartKey(cartID string) string {
	return cartKeyPrefix + cartID
}

// Load hydrates the line items for a cart. An absent key yields an empty
// cart; so does a malformed payload, which is dropped rather than surfaced.
func (r *CartRepository) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	val, err := r.redis.Get(ctx, cartKey(cartID)).Result()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}

	items, ok := decodeCart([]byte(val))
	if !ok {
		r.logger.WithField("cartId", cartID).Warn("Discarding malformed persisted cart")
		if delErr := r.redis.Del(ctx, cartKey(cartID)).Err(); delErr != nil {
			r.logger.WithField("cartId", cartID).WithError(delErr).Warn("Failed to delete malformed cart")
		}
		return []models.CartItem{}, nil
	}
	return items, nil
}

// decodeCart decodes a persisted cart payload. ok is false when the payload
// is not a line-item array; a JSON null decodes to an empty cart.
func decodeCart(data []byte) ([]models.CartItem, bool) {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, true
}

// Save writes the full cart state, replacing the previous value
func (r *CartRepository) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", cartID, err)
	}
	if err := r.redis.Set(ctx, cartKey(cartID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to persist cart %s: %w", cartID, err)
	}
	return nil
}

// Delete erases the persisted slot
func (r *CartRepository) Delete(ctx context.Context, cartID string) error {
	if err := r.redis.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", cartID, err)
	}
	return nil
}
