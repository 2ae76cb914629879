package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rakadenta/pomodoro-backend/internal/logging"
)

const Topic = "pomodoro_events"

// Producer publishes domain events (user registered, user signed in, task
// created, task completed). A nil Producer is a valid no-op, so deployments
// without Kafka run unchanged.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Publish is best-effort: failures are logged and never fail the request
// that triggered the event.
func (p *Producer) Publish(ctx context.Context, eventType, username string, extra map[string]any) {
	if p == nil || p.writer == nil {
		return
	}

	event := map[string]any{
		"type":     eventType,
		"username": username,
	}
	for k, v := range extra {
		event[k] = v
	}

	data, err := json.Marshal(event)
	if err != nil {
		logging.FromContext(ctx).Warn("event_marshal_failed", "type", eventType, "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(username),
		Value: data,
	}); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "type", eventType, "error", err)
	}
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
