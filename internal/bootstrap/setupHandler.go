package bootstrap

import (
	httpHandler "lobby-service/internal/api/http/handler"
	httpUsecase "lobby-service/internal/api/http/usecase"
	wsHandler "lobby-service/internal/api/ws/handler"
	wsUsecase "lobby-service/internal/api/ws/usecase"
)

func SetupHTTPHandlers(postgresRepository PostgresRepository, roomBus RoomBus, kafka Messaging) map[string]interface{} {
	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(postgresRepository, kafka)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	listRoomsUseCase := httpUsecase.NewListRoomsUseCase(postgresRepository)
	listRoomsHandler := httpHandler.NewListRoomsHandler(listRoomsUseCase)

	getRoomUseCase := httpUsecase.NewGetRoomUseCase(postgresRepository)
	getRoomHandler := httpHandler.NewGetRoomHandler(getRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(postgresRepository, roomBus)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(postgresRepository, roomBus)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	startGameUseCase := httpUsecase.NewStartGameUseCase(postgresRepository, kafka)
	startGameHandler := httpHandler.NewStartGameHandler(startGameUseCase)

	closeRoomUseCase := httpUsecase.NewCloseRoomUseCase(postgresRepository, kafka)
	closeRoomHandler := httpHandler.NewCloseRoomHandler(closeRoomUseCase)

	return map[string]interface{}{
		"create-room": createRoomHandler,
		"list-rooms":  listRoomsHandler,
		"get-room":    getRoomHandler,
		"join-room":   joinRoomHandler,
		"leave-room":  leaveRoomHandler,
		"start-game":  startGameHandler,
		"close-room":  closeRoomHandler,
	}
}

func SetupWSHandlers(wsHub Hub) map[string]interface{} {
	connectUseCase := wsUsecase.NewConnectUseCase(wsHub)
	connectHandler := wsHandler.NewConnectHandler(connectUseCase)

	return map[string]interface{}{
		"lobby-connect": connectHandler,
	}
}
