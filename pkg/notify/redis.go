package notify

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/voidshard/fortitrack/pkg/structs"
)

const channelPrefix = "fortitrack:notify:"

// RedisOptions configures a Redis notifier.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	TLSConfig *tls.Config
}

// Redis publishes notifications on a per user pub/sub channel. Clients (ie. the web UI's
// websocket bridge) subscribe to Channel(theirID).
type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, opts *RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:      opts.Addr,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: opts.TLSConfig,
	})
	err := client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Notify(ctx context.Context, userID string, n *structs.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, Channel(userID), data).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// Channel is the pub/sub channel notifications for the given user are published on.
func Channel(userID string) string {
	return channelPrefix + userID
}
