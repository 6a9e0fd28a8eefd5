package httpHandler

import (
	"context"

	"lobby-service/domain"
	httpUsecase "lobby-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoomRequest struct {
	RoomID string `params:"room_id" validate:"required,uuid4"`
}

type GetRoomResponse struct {
	Room domain.Room `json:"room"`
}

type GetRoomHandler struct {
	usecase httpUsecase.GetRoomUseCase
}

func NewGetRoomHandler(usecase httpUsecase.GetRoomUseCase) *GetRoomHandler {
	return &GetRoomHandler{
		usecase: usecase,
	}
}

func (h *GetRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomRequest) (*GetRoomResponse, int, error) {
	room, status, err := h.usecase.Execute(ctx, req.RoomID)
	if err != nil {
		return nil, status, err
	}

	return &GetRoomResponse{Room: room}, status, nil
}
