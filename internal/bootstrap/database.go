package bootstrap

import (
	"context"

	"lobby-service/config"
	"lobby-service/domain"
	"lobby-service/internal/initializer"
)

type PostgresRepository interface {
	Close() error
	CreateRoom(ctx context.Context, roomName string, maxPlayers int, isPrivate bool, hostID, hostName string) (domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (domain.Room, error)
	ListRooms(ctx context.Context, status string, publicOnly bool) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, roomID string, upd domain.RoomUpdate) (domain.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
	JoinRoom(ctx context.Context, roomID, userID string) error
	LeaveRoom(ctx context.Context, roomID, userID string) error
	StartGame(ctx context.Context, roomID, userID string) error
	CloseRoom(ctx context.Context, roomID, userID string) error
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
