package httpHandler

import (
	"context"

	"lobby-service/domain"
	httpUsecase "lobby-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveRoomRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid4"`
}

type LeaveRoomResponse struct {
	Message string `json:"message"`
}

type LeaveRoomHandler struct {
	usecase httpUsecase.LeaveRoomUseCase
}

func NewLeaveRoomHandler(usecase httpUsecase.LeaveRoomUseCase) *LeaveRoomHandler {
	return &LeaveRoomHandler{
		usecase: usecase,
	}
}

func (h *LeaveRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *LeaveRoomRequest) (*LeaveRoomResponse, int, error) {
	userID, _ := fbrCtx.Locals("user_id").(string)
	username, _ := fbrCtx.Locals("username").(string)
	if userID == "" {
		return nil, fiber.StatusUnauthorized, domain.ErrUnauthorized
	}

	status, err := h.usecase.Execute(ctx, req.RoomID, userID, username)
	if err != nil {
		return nil, status, err
	}

	return &LeaveRoomResponse{Message: "left room"}, status, nil
}
