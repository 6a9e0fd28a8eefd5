package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"lobby-service/domain"
	"lobby-service/internal/messaging"

	"github.com/gofiber/fiber/v2"
)

type CloseRoomUseCase interface {
	Execute(ctx context.Context, roomID, userID string) (int, error)
}

type closeRoomUseCase struct {
	repository PostgresRepository
	producer   LifecycleProducer
}

func NewCloseRoomUseCase(repository PostgresRepository, producer LifecycleProducer) CloseRoomUseCase {
	return &closeRoomUseCase{
		repository: repository,
		producer:   producer,
	}
}

func (u *closeRoomUseCase) Execute(ctx context.Context, roomID, userID string) (int, error) {
	err := u.repository.CloseRoom(ctx, roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, err
		case errors.Is(err, domain.ErrForbidden):
			return http.StatusForbidden, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	go u.producer.Publish(context.WithoutCancel(ctx), messaging.EventRoomClosed, roomID, map[string]string{
		"closed_by": userID,
	})
	return fiber.StatusOK, nil
}
