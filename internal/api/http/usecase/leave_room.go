package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"lobby-service/domain"
	"lobby-service/infra/redisbus"

	"github.com/gofiber/fiber/v2"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, roomID, userID, username string) (int, error)
}

type leaveRoomUseCase struct {
	repository PostgresRepository
	roomBus    RoomBusRepository
}

func NewLeaveRoomUseCase(repository PostgresRepository, roomBus RoomBusRepository) LeaveRoomUseCase {
	return &leaveRoomUseCase{
		repository: repository,
		roomBus:    roomBus,
	}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, roomID, userID, username string) (int, error) {
	err := u.repository.LeaveRoom(ctx, roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, err
		case errors.Is(err, domain.ErrConflict):
			return http.StatusConflict, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	go u.roomBus.PublishRoomEvent(context.WithoutCancel(ctx), roomID, redisbus.MsgPlayerLeft, map[string]string{
		"userId":   userID,
		"username": username,
	})
	return fiber.StatusOK, nil
}
