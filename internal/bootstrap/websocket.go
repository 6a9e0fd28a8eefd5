package bootstrap

import (
	"context"

	"lobby-service/domain"
	"lobby-service/internal/initializer"
)

type Hub interface {
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
	RoomClientCount(roomID string) int
	Snapshot(roomID string) domain.RoomInfo
}

func InitWebsocket(ctx context.Context, postgresRepo PostgresRepository, roomBus RoomBus) Hub {
	return initializer.InitWebsocket(ctx, postgresRepo, roomBus)
}
