package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Room event kinds carried over the bus.
const (
	MsgPlayerJoined = "player_joined"
	MsgPlayerLeft   = "player_left"
)

// RoomEvent is the payload published on a room's channel when membership
// changes outside the socket path.
type RoomEvent struct {
	RoomID    string            `json:"roomId"`
	Type      string            `json:"type"`
	Data      map[string]string `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
}

// Bus publishes and subscribes room events over Redis pub/sub, one channel
// per room.
type Bus struct {
	client *redis.Client
}

func NewBus(redisAddr string, password string, db int) (*Bus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	zap.L().Info("Connected to room Redis successfully")
	return &Bus{client: client}, nil
}

func channelFor(roomID string) string {
	return fmt.Sprintf("room:%s", roomID)
}

// PublishRoomEvent is best effort; failures are logged and swallowed.
func (b *Bus) PublishRoomEvent(ctx context.Context, roomID, msgType string, data map[string]string) {
	event := RoomEvent{
		RoomID:    roomID,
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Failed to marshal room event", zap.Error(err))
		return
	}

	if err := b.client.Publish(ctx, channelFor(roomID), payload).Err(); err != nil {
		zap.L().Error("Failed to publish room event",
			zap.String("room_id", roomID), zap.Error(err))
	}
}

// Subscribe opens a subscription on the room's channel. The caller owns the
// returned PubSub and must close it.
func (b *Bus) Subscribe(ctx context.Context, roomID string) *redis.PubSub {
	return b.client.Subscribe(ctx, channelFor(roomID))
}

func (b *Bus) Close() error {
	return b.client.Close()
}
