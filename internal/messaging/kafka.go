package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Lifecycle event kinds published for downstream services (matchmaking,
// stats, notifications).
const (
	EventRoomCreated = "room_created"
	EventGameStarted = "game_started"
	EventRoomClosed  = "room_closed"
)

// Event is the JSON payload written to the lobby events topic, keyed by room
// id so per-room ordering is preserved.
type Event struct {
	Type      string            `json:"type"`
	RoomID    string            `json:"roomId"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Producer publishes lobby lifecycle events to Kafka.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	zap.L().Info("Kafka producer initialized", zap.String("topic", topic))
	return &Producer{writer: writer}
}

// Publish is best effort; a broker failure is logged and the caller's
// operation proceeds.
func (p *Producer) Publish(ctx context.Context, eventType, roomID string, data map[string]string) {
	event := Event{
		Type:      eventType,
		RoomID:    roomID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Failed to marshal lifecycle event", zap.Error(err))
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(roomID),
		Value: payload,
	})
	if err != nil {
		zap.L().Error("Failed to publish lifecycle event",
			zap.String("type", eventType),
			zap.String("room_id", roomID),
			zap.Error(err))
		return
	}
	zap.L().Debug("lifecycle event published",
		zap.String("type", eventType),
		zap.String("room_id", roomID))
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
