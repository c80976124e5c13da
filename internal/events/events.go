// Package events publishes domain events to Redis pub/sub. Publishing is
// best effort: a failed publish is logged, never surfaced to the caller.
package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
)

// Channel names other components subscribe on.
const (
	CandidateAdded    = "EVENT_CANDIDATE_ADDED"
	FilteringComplete = "EVENT_FILTERING_COMPLETE"
	ScheduleRebuilt   = "EVENT_SCHEDULE_REBUILT"
	UserSignedUp      = "EVENT_USER_SIGNED_UP"
)

// Publisher fans domain events out over Redis.
type Publisher struct {
	rdb *redis.Client
	log logger.Logger
}

// NewPublisher wraps the Redis client.
func NewPublisher(rdb *redis.Client, log logger.Logger) *Publisher {
	return &Publisher{rdb: rdb, log: log}
}

// Publish serializes payload to JSON and publishes it on channel.
func (p *Publisher) Publish(ctx context.Context, channel string, payload map[string]string) {
	if p == nil || p.rdb == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		p.log.Warn("marshal event payload", logger.String("channel", channel), logger.Error(err))
		return
	}

	if err := p.rdb.Publish(ctx, channel, body).Err(); err != nil {
		p.log.Warn("publish event failed", logger.String("channel", channel), logger.Error(err))
	}
}
