package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaseNamespace = "dispatch:lease"

type setNXer interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// Lease grants a named lease to at most one owner until its TTL runs out.
// Leases are never released early; a tick that finishes sooner simply keeps
// the name busy until expiry.
type Lease struct {
	store setNXer
	owner string
}

func NewLease(client redis.Cmdable, owner string) *Lease {
	return &Lease{store: client, owner: owner}
}

// Acquire reports whether this owner now holds name for ttl.
func (l *Lease) Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	return l.store.SetNX(ctx, leaseKey(name), l.owner, ttl).Result()
}

func leaseKey(name string) string {
	return strings.Join([]string{leaseNamespace, name}, ":")
}
