package bootstrap

import (
	"time"

	"lobby-service/config"
	httpHandler "lobby-service/internal/api/http/handler"
	wsHandler "lobby-service/internal/api/ws/handler"
	"lobby-service/internal/handler"
	"lobby-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, sessionManager SessionManager, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	listRoomsHandler := httpHandlers["list-rooms"].(*httpHandler.ListRoomsHandler)
	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)
	startGameHandler := httpHandlers["start-game"].(*httpHandler.StartGameHandler)
	closeRoomHandler := httpHandlers["close-room"].(*httpHandler.CloseRoomHandler)

	rooms := app.Group("/rooms", handler.AuthGuard(sessionManager))
	rooms.Post("/", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.CreateRoomResponse](createRoomHandler))
	rooms.Get("/", handler.HandleWithFiber[httpHandler.ListRoomsRequest, httpHandler.ListRoomsResponse](listRoomsHandler))
	rooms.Get("/:room_id", handler.HandleWithFiber[httpHandler.GetRoomRequest, httpHandler.GetRoomResponse](getRoomHandler))
	rooms.Post("/:room_id/join", handler.HandleWithFiber[httpHandler.JoinRoomRequest, httpHandler.JoinRoomResponse](joinRoomHandler))
	rooms.Post("/:room_id/leave", handler.HandleWithFiber[httpHandler.LeaveRoomRequest, httpHandler.LeaveRoomResponse](leaveRoomHandler))
	rooms.Post("/:room_id/start", handler.HandleWithFiber[httpHandler.StartGameRequest, httpHandler.StartGameResponse](startGameHandler))
	rooms.Post("/:room_id/close", handler.HandleWithFiber[httpHandler.CloseRoomRequest, httpHandler.CloseRoomResponse](closeRoomHandler))

	connectHandler := wsHandlers["lobby-connect"].(*wsHandler.ConnectHandler)
	wsRoute := app.Group("/ws")
	wsRoute.Get("/", handler.HandleWithFiberWS[wsHandler.ConnectRequest](connectHandler))

	return app
}
