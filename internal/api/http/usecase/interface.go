package httpUsecase

import (
	"context"
	"lobby-service/domain"
)

type PostgresRepository interface {
	CreateRoom(ctx context.Context, roomName string, maxPlayers int, isPrivate bool, hostID, hostName string) (domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (domain.Room, error)
	ListRooms(ctx context.Context, status string, publicOnly bool) ([]domain.Room, error)
	JoinRoom(ctx context.Context, roomID, userID string) error
	LeaveRoom(ctx context.Context, roomID, userID string) error
	StartGame(ctx context.Context, roomID, userID string) error
	CloseRoom(ctx context.Context, roomID, userID string) error
}

type RoomBusRepository interface {
	PublishRoomEvent(ctx context.Context, roomID, msgType string, data map[string]string)
}

type LifecycleProducer interface {
	Publish(ctx context.Context, eventType, roomID string, data map[string]string)
}
