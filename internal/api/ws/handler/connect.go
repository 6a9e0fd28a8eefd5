package wsHandler

import (
	"context"

	wsUsecase "lobby-service/internal/api/ws/usecase"

	"github.com/gofiber/contrib/websocket"
)

// ConnectHandler upgrades lobby clients onto the hub.
type ConnectHandler struct {
	usecase wsUsecase.ConnectUseCase
}

type ConnectRequest struct {
}

func NewConnectHandler(usecase wsUsecase.ConnectUseCase) *ConnectHandler {
	return &ConnectHandler{
		usecase: usecase,
	}
}

func (h *ConnectHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *ConnectRequest) {
	h.usecase.Execute(c, ctx)
}
