package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"lobby-service/domain"

	"github.com/gofiber/fiber/v2"
)

type GetRoomUseCase interface {
	Execute(ctx context.Context, roomID string) (domain.Room, int, error)
}

type getRoomUseCase struct {
	repository PostgresRepository
}

func NewGetRoomUseCase(repository PostgresRepository) GetRoomUseCase {
	return &getRoomUseCase{
		repository: repository,
	}
}

func (u *getRoomUseCase) Execute(ctx context.Context, roomID string) (domain.Room, int, error) {
	room, err := u.repository.GetRoom(ctx, roomID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.Room{}, http.StatusNotFound, err
		default:
			return domain.Room{}, http.StatusInternalServerError, err
		}
	}
	return room, fiber.StatusOK, nil
}
