package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"safewatch-chatbot/pkg"
)

// redisListKey is the list all reports are pushed onto; consumers drain
// it out-of-band.
const redisListKey = "adverse_events"

// RedisSink pushes JSON-encoded reports onto a Redis list. It is the
// production backend for serverless deployments where the filesystem is
// ephemeral.
type RedisSink struct {
	client *redis.Client
}

// NewRedisSink constructs a sink from a Redis connection URL
// (redis://[user:pass@]host:port/db).
func NewRedisSink(rawURL string) (*RedisSink, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &RedisSink{client: redis.NewClient(opts)}, nil
}

// Save LPUSHes the report onto the adverse_events list.
func (s *RedisSink) Save(ctx context.Context, report *pkg.AdverseEventReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.client.LPush(ctx, redisListKey, payload).Err()
}

// Close releases the underlying Redis connection.
func (s *RedisSink) Close() error { return s.client.Close() }
