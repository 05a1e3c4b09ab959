package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures RedisSink.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
	Channel string `yaml:"channel"`
}

// RedisSink publishes events via Redis Pub/Sub.
type RedisSink struct {
	Client  *redis.Client
	Channel string
}

// NewRedisSink returns a Pub/Sub sink based on config. It returns a
// nil Sink when disabled so the dispatcher drops it.
func NewRedisSink(c RedisConfig) (Sink, error) {
	if !c.Enabled || c.DSN == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(c.DSN)
	if err != nil {
		return nil, err
	}
	ch := c.Channel
	if ch == "" {
		ch = "formconfig-events"
	}
	return &RedisSink{Client: redis.NewClient(opt), Channel: ch}, nil
}

func (s *RedisSink) Emit(ctx context.Context, e Event) error {
	if s == nil || s.Client == nil {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.Client.Publish(ctx, s.Channel, data).Err()
}
