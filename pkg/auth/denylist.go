package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const denylistPrefix = "denylist:"

// Denylist holds logged-out tokens in redis until their natural expiry.
// Tokens stay stateless otherwise; this is the only server-side token
// state in the system.
type Denylist struct {
	rdb *redis.Client
}

func NewDenylist(rdb *redis.Client) *Denylist {
	return &Denylist{rdb: rdb}
}

// Add stores the raw token with the given TTL, which callers set to the
// token's remaining lifetime.
func (d *Denylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, denylistPrefix+token, 1, ttl).Err()
}

// Contains reports whether the token has been denylisted.
func (d *Denylist) Contains(ctx context.Context, token string) (bool, error) {
	exists, err := d.rdb.Exists(ctx, denylistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
