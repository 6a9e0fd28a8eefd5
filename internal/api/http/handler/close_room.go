package httpHandler

import (
	"context"

	"lobby-service/domain"
	httpUsecase "lobby-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CloseRoomRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid4"`
}

type CloseRoomResponse struct {
	Message string `json:"message"`
}

type CloseRoomHandler struct {
	usecase httpUsecase.CloseRoomUseCase
}

func NewCloseRoomHandler(usecase httpUsecase.CloseRoomUseCase) *CloseRoomHandler {
	return &CloseRoomHandler{
		usecase: usecase,
	}
}

func (h *CloseRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CloseRoomRequest) (*CloseRoomResponse, int, error) {
	userID, _ := fbrCtx.Locals("user_id").(string)
	if userID == "" {
		return nil, fiber.StatusUnauthorized, domain.ErrUnauthorized
	}

	status, err := h.usecase.Execute(ctx, req.RoomID, userID)
	if err != nil {
		return nil, status, err
	}

	return &CloseRoomResponse{Message: "room closed"}, status, nil
}
