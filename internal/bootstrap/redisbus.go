package bootstrap

import (
	"context"

	"lobby-service/config"
	"lobby-service/internal/initializer"

	"github.com/redis/go-redis/v9"
)

type RoomBus interface {
	PublishRoomEvent(ctx context.Context, roomID, msgType string, data map[string]string)
	Subscribe(ctx context.Context, roomID string) *redis.PubSub
	Close() error
}

func InitRoomBus(config config.Config) RoomBus {
	return initializer.InitRoomRedis(config)
}
