package httpHandler

import (
	"context"

	"lobby-service/domain"
	httpUsecase "lobby-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListRoomsRequest struct {
	Status     string `query:"status" validate:"omitempty,oneof=waiting full in_progress closed"`
	Visibility string `query:"visibility" validate:"omitempty,oneof=public all"`
}

type ListRoomsResponse struct {
	Rooms []domain.Room `json:"rooms"`
}

type ListRoomsHandler struct {
	usecase httpUsecase.ListRoomsUseCase
}

func NewListRoomsHandler(usecase httpUsecase.ListRoomsUseCase) *ListRoomsHandler {
	return &ListRoomsHandler{
		usecase: usecase,
	}
}

func (h *ListRoomsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ListRoomsRequest) (*ListRoomsResponse, int, error) {
	rooms, status, err := h.usecase.Execute(ctx, req.Status, req.Visibility == "public")
	if err != nil {
		return nil, status, err
	}

	return &ListRoomsResponse{Rooms: rooms}, status, nil
}
