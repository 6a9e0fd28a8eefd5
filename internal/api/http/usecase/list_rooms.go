package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"lobby-service/domain"

	"github.com/gofiber/fiber/v2"
)

type ListRoomsUseCase interface {
	Execute(ctx context.Context, status string, publicOnly bool) ([]domain.Room, int, error)
}

type listRoomsUseCase struct {
	repository PostgresRepository
}

func NewListRoomsUseCase(repository PostgresRepository) ListRoomsUseCase {
	return &listRoomsUseCase{
		repository: repository,
	}
}

func (u *listRoomsUseCase) Execute(ctx context.Context, status string, publicOnly bool) ([]domain.Room, int, error) {
	rooms, err := u.repository.ListRooms(ctx, status, publicOnly)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return nil, http.StatusBadRequest, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}
	return rooms, fiber.StatusOK, nil
}
