package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"lobby-service/domain"
	"lobby-service/infra/redisbus"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, roomID, userID, username string) (int, error)
}

type joinRoomUseCase struct {
	repository PostgresRepository
	roomBus    RoomBusRepository
}

func NewJoinRoomUseCase(repository PostgresRepository, roomBus RoomBusRepository) JoinRoomUseCase {
	return &joinRoomUseCase{
		repository: repository,
		roomBus:    roomBus,
	}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, roomID, userID, username string) (int, error) {
	err := u.repository.JoinRoom(ctx, roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, err
		case errors.Is(err, domain.ErrConflict):
			return http.StatusConflict, err
		case errors.Is(err, domain.ErrInvalidInput):
			return http.StatusBadRequest, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	go u.roomBus.PublishRoomEvent(context.WithoutCancel(ctx), roomID, redisbus.MsgPlayerJoined, map[string]string{
		"userId":   userID,
		"username": username,
	})
	return fiber.StatusOK, nil
}
