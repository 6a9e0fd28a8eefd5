package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"lobby-service/domain"
	"lobby-service/internal/messaging"

	"github.com/gofiber/fiber/v2"
)

type StartGameUseCase interface {
	Execute(ctx context.Context, roomID, userID string) (int, error)
}

type startGameUseCase struct {
	repository PostgresRepository
	producer   LifecycleProducer
}

func NewStartGameUseCase(repository PostgresRepository, producer LifecycleProducer) StartGameUseCase {
	return &startGameUseCase{
		repository: repository,
		producer:   producer,
	}
}

func (u *startGameUseCase) Execute(ctx context.Context, roomID, userID string) (int, error) {
	err := u.repository.StartGame(ctx, roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, err
		case errors.Is(err, domain.ErrForbidden):
			return http.StatusForbidden, err
		case errors.Is(err, domain.ErrConflict):
			return http.StatusConflict, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	go u.producer.Publish(context.WithoutCancel(ctx), messaging.EventGameStarted, roomID, map[string]string{
		"started_by": userID,
	})
	return fiber.StatusOK, nil
}
