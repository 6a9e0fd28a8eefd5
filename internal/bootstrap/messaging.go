package bootstrap

import (
	"context"

	"lobby-service/config"
	"lobby-service/internal/initializer"
)

type Messaging interface {
	Publish(ctx context.Context, eventType, roomID string, data map[string]string)
	Close() error
}

func SetupMessaging(config config.Config) Messaging {
	return initializer.InitMessaging(config)
}
