package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// InvocationClaim serializes provider invocations per (session, action).
// Exactly one caller can hold the claim at a time; everyone else backs
// off instead of double-billing a second LLM call.
type InvocationClaim interface {
	Acquire(ctx context.Context, sessionID, action string) (bool, error)
	Release(ctx context.Context, sessionID, action string) error
}

type invocationClaim struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInvocationClaim creates a Redis-backed claim. The TTL bounds how
// long a crashed holder can block the key and should sit above the
// provider timeout.
func NewInvocationClaim(client *redis.Client, ttl time.Duration) InvocationClaim {
	return &invocationClaim{
		client: client,
		ttl:    ttl,
	}
}

func claimKey(sessionID, action string) string {
	return "ai:claim:" + sessionID + ":" + action
}

func (c *invocationClaim) Acquire(ctx context.Context, sessionID, action string) (bool, error) {
	return c.client.SetNX(ctx, claimKey(sessionID, action), "1", c.ttl).Result()
}

func (c *invocationClaim) Release(ctx context.Context, sessionID, action string) error {
	return c.client.Del(ctx, claimKey(sessionID, action)).Err()
}
