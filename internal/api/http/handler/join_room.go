package httpHandler

import (
	"context"

	"lobby-service/domain"
	httpUsecase "lobby-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid4"`
}

type JoinRoomResponse struct {
	Message string `json:"message"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{
		usecase: usecase,
	}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	userID, _ := fbrCtx.Locals("user_id").(string)
	username, _ := fbrCtx.Locals("username").(string)
	if userID == "" {
		return nil, fiber.StatusUnauthorized, domain.ErrUnauthorized
	}

	status, err := h.usecase.Execute(ctx, req.RoomID, userID, username)
	if err != nil {
		return nil, status, err
	}

	return &JoinRoomResponse{Message: "joined room"}, status, nil
}
