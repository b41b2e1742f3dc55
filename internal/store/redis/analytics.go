package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Analytics counts how often each chatbot topic is asked about. It is an
// observability aid, never on the request critical path: a nil client turns
// every method into a no-op so the service runs fine without Redis.
type Analytics struct {
	client *redis.Client
}

// NewAnalytics creates the analytics store. client may be nil (disabled).
func NewAnalytics(client *redis.Client) *Analytics {
	return &Analytics{
		client: client,
	}
}

// Enabled reports whether a Redis client is attached.
func (a *Analytics) Enabled() bool {
	return a != nil && a.client != nil
}

// IncrementTopic bumps the counter for a topic and records the topic in the
// all-topics set. Callers treat failures as best-effort.
func (a *Analytics) IncrementTopic(ctx context.Context, topic string) error {
	if !a.Enabled() {
		return nil
	}

	pipe := a.client.Pipeline()
	pipe.Incr(ctx, TopicKey(topic))
	pipe.SAdd(ctx, AllTopicsKey(), topic)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment topic counter: %w", err)
	}
	return nil
}

// TopicStats retrieves the counters for every topic seen so far.
func (a *Analytics) TopicStats(ctx context.Context) (map[string]int64, error) {
	if !a.Enabled() {
		return map[string]int64{}, nil
	}

	topics, err := a.client.SMembers(ctx, AllTopicsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get topic set: %w", err)
	}

	stats := make(map[string]int64, len(topics))
	for _, topic := range topics {
		count, err := a.client.Get(ctx, TopicKey(topic)).Int64()
		if err != nil {
			// Counter may have expired or been deleted out of band
			continue
		}
		stats[topic] = count
	}
	return stats, nil
}

// Ping verifies the Redis connection for health reporting.
func (a *Analytics) Ping(ctx context.Context) error {
	if !a.Enabled() {
		return fmt.Errorf("analytics disabled: no redis client")
	}
	return a.client.Ping(ctx).Err()
}
