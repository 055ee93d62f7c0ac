package nonce

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "ingress:nonce:"
	minTTL    = time.Second
)

// Repository одноразовые nonce подписанных конвертов.
type Repository struct {
	client redis.Cmdable
}

func New(client redis.Cmdable) *Repository {
	return &Repository{
		client: client,
	}
}

// Claim true, если nonce встретился впервые. Ключ живет до истечения конверта.
func (r *Repository) Claim(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	if ttl < minTTL {
		ttl = minTTL
	}

	ok, err := r.client.SetNX(ctx, keyPrefix+nonce, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("unexpected nonce repository claim error: %w", err)
	}
	return ok, nil
}
