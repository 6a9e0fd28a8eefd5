package httpHandler

import (
	"context"

	"lobby-service/domain"
	httpUsecase "lobby-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct {
	RoomName   string `json:"room_name" validate:"required,min=1,max=64"`
	MaxPlayers int    `json:"max_players" validate:"required,min=2,max=12"`
	IsPrivate  bool   `json:"is_private"`
}

type CreateRoomResponse struct {
	Room domain.Room `json:"room"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{
		usecase: usecase,
	}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	userID, _ := fbrCtx.Locals("user_id").(string)
	username, _ := fbrCtx.Locals("username").(string)
	if userID == "" {
		return nil, fiber.StatusUnauthorized, domain.ErrUnauthorized
	}

	room, status, err := h.usecase.Execute(ctx, req.RoomName, req.MaxPlayers, req.IsPrivate, userID, username)
	if err != nil {
		return nil, status, err
	}

	return &CreateRoomResponse{Room: room}, status, nil
}
