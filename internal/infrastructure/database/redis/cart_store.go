// internal/infrastructure/database/redis/cart_store.go
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arcadiareads/bookstore-backend/internal/domain/cart"
)

// CartStore persists cart documents as JSON values with a TTL.
// Keys look like "cart:user:42" or "cart:session:<uuid>".
type CartStore struct {
	client *Client
	ttl    time.Duration
}

// NewCartStore creates a new cart store
func NewCartStore(client *Client, ttl time.Duration) *CartStore {
	return &CartStore{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the owner's cart, or an empty cart if none is stored
func (s *CartStore) Get(ctx context.Context, owner string) (*cart.Cart, error) {
	data, err := s.client.Client.Get(ctx, s.key(owner)).Bytes()
	if err == redis.Nil {
		return &cart.Cart{Owner: owner, Items: []cart.Item{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

// Save writes the cart document and refreshes its TTL
func (s *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Client.Set(ctx, s.key(c.Owner), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the owner's cart document
func (s *CartStore) Delete(ctx context.Context, owner string) error {
	if err := s.client.Client.Del(ctx, s.key(owner)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

func (s *CartStore) key(owner string) string {
	return "cart:" + owner
}
