package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"lobby-service/domain"
	"lobby-service/internal/messaging"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, roomName string, maxPlayers int, isPrivate bool, hostID, hostName string) (domain.Room, int, error)
}

type createRoomUseCase struct {
	repository PostgresRepository
	producer   LifecycleProducer
}

func NewCreateRoomUseCase(repository PostgresRepository, producer LifecycleProducer) CreateRoomUseCase {
	return &createRoomUseCase{
		repository: repository,
		producer:   producer,
	}
}

func (u *createRoomUseCase) Execute(ctx context.Context, roomName string, maxPlayers int, isPrivate bool, hostID, hostName string) (domain.Room, int, error) {
	room, err := u.repository.CreateRoom(ctx, roomName, maxPlayers, isPrivate, hostID, hostName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return domain.Room{}, http.StatusBadRequest, err
		case errors.Is(err, domain.ErrConflict):
			return domain.Room{}, http.StatusConflict, err
		default:
			return domain.Room{}, http.StatusInternalServerError, err
		}
	}

	go u.producer.Publish(context.WithoutCancel(ctx), messaging.EventRoomCreated, room.ID, map[string]string{
		"host_id":   hostID,
		"room_name": roomName,
	})
	return room, fiber.StatusCreated, nil
}
