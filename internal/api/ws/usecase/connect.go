package wsUsecase

import (
	"context"
	"time"

	"lobby-service/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context)
}

type connectUseCase struct {
	hub Hub
}

func NewConnectUseCase(hub Hub) ConnectUseCase {
	return &connectUseCase{
		hub: hub,
	}
}

// Execute greets the connection, hands it to the hub and parks until the hub
// unregisters it. Returning from here lets fiber tear down the socket, so we
// must not return while the hub still owns the connection.
func (u *connectUseCase) Execute(c *websocket.Conn, ctx context.Context) {
	client := &domain.Client{
		ID:   uuid.New(),
		Conn: c,
		Send: make(chan []byte, 256),
		Done: make(chan struct{}),
	}

	welcome := domain.Welcome{
		Type:      domain.MsgWelcome,
		ClientID:  client.ID.String(),
		Message:   "Connected to lobby server",
		Timestamp: time.Now().UTC(),
	}
	if err := c.WriteJSON(welcome); err != nil {
		zap.L().Warn("failed to send welcome message", zap.Error(err))
		c.Close()
		return
	}

	u.hub.RegisterClient(client)
	<-client.Done
}
