package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InviteCodeRegistry reserves invite codes via SETNX so two concurrent invite
// creations can never hand out the same code.
// Key format: invite_code:<code>
type InviteCodeRegistry struct {
	client *redis.Client
}

func NewInviteCodeRegistry(client *redis.Client) *InviteCodeRegistry {
	return &InviteCodeRegistry{client: client}
}

// Reserve claims the code for ttl. Returns false when another invite already
// holds it.
func (r *InviteCodeRegistry) Reserve(ctx context.Context, code string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.key(code), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("invite code reserve: %w", err)
	}
	return ok, nil
}

func (r *InviteCodeRegistry) key(code string) string {
	return "invite_code:" + code
}
