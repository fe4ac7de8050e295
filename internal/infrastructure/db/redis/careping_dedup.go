package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 48 * time.Hour

// CarePingDedup limits care pings to one per primary user per calendar day.
// Key format: careping:<primary_user_id>:<yyyy-mm-dd>
type CarePingDedup struct {
	client *redis.Client
}

func NewCarePingDedup(client *redis.Client) *CarePingDedup {
	return &CarePingDedup{client: client}
}

// IsDuplicate reports whether a ping was already sent for this user today.
func (d *CarePingDedup) IsDuplicate(ctx context.Context, primaryUserID string, day time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(primaryUserID, day)).Result()
	if err != nil {
		return false, fmt.Errorf("care ping dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that today's ping went out (expires after dedupTTL).
func (d *CarePingDedup) Mark(ctx context.Context, primaryUserID string, day time.Time) error {
	return d.client.Set(ctx, d.key(primaryUserID, day), "1", dedupTTL).Err()
}

func (d *CarePingDedup) key(primaryUserID string, day time.Time) string {
	return fmt.Sprintf("careping:%s:%s", primaryUserID, day.UTC().Format("2006-01-02"))
}
