package httpHandler

import (
	"context"

	"lobby-service/domain"
	httpUsecase "lobby-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type StartGameRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid4"`
}

type StartGameResponse struct {
	Message string `json:"message"`
}

type StartGameHandler struct {
	usecase httpUsecase.StartGameUseCase
}

func NewStartGameHandler(usecase httpUsecase.StartGameUseCase) *StartGameHandler {
	return &StartGameHandler{
		usecase: usecase,
	}
}

func (h *StartGameHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StartGameRequest) (*StartGameResponse, int, error) {
	userID, _ := fbrCtx.Locals("user_id").(string)
	if userID == "" {
		return nil, fiber.StatusUnauthorized, domain.ErrUnauthorized
	}

	status, err := h.usecase.Execute(ctx, req.RoomID, userID)
	if err != nil {
		return nil, status, err
	}

	return &StartGameResponse{Message: "game started"}, status, nil
}
