package initializer

import (
	"context"

	lobbyHub "lobby-service/internal/hub"
)

func InitWebsocket(ctx context.Context, store lobbyHub.RoomStore, bus lobbyHub.RoomBus) *lobbyHub.Hub {
	hub := lobbyHub.NewHub(store, bus)
	go hub.Run(ctx)
	return hub
}
