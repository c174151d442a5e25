package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/trainsight/backend/internal/telemetry/metrics"
	"github.com/trainsight/backend/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const channelPrefix = "trainsight-events||"

// Event is the envelope published to the per-user notification channel.
// Consumed by the (external) push notification dispatcher.
type Event struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// RedisPublisher publishes notification events to redis pub/sub.
// Publishing is fire-and-forget: a failed publish must never fail the
// data write that triggered it, so errors are logged and swallowed here.
type RedisPublisher struct {
	redisClient    *redis.Client
	metricsManager *metrics.Manager
}

func NewRedisPublisher(redisClient *redis.Client, metricsManager *metrics.Manager) *RedisPublisher {
	return &RedisPublisher{
		redisClient:    redisClient,
		metricsManager: metricsManager,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, userID, eventName string, payload any) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "events.publish")
	defer span.End()

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		p.publishFailed(eventName, err)
		return
	}

	event := Event{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      eventName,
		Payload:   payloadJson,
		Timestamp: time.Now(),
	}

	eventJson, err := json.Marshal(event)
	if err != nil {
		p.publishFailed(eventName, err)
		return
	}

	if err := p.redisClient.Publish(ctx, channelPrefix+userID, string(eventJson)).Err(); err != nil {
		p.publishFailed(eventName, err)
		return
	}

	log.Tracef("event [%s] published for user [%s]", eventName, userID)
}

func (p *RedisPublisher) publishFailed(eventName string, err error) {
	log.Errorf("failed to publish event [%s]: %s", eventName, err)
	if p.metricsManager != nil {
		p.metricsManager.CounterEventPublishErrors.Inc()
	}
}
