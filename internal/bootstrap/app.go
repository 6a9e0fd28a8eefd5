package bootstrap

import (
	"context"
	"time"

	"lobby-service/config"
	"lobby-service/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config         config.Config
	postgresRepo   PostgresRepository
	sessionManager SessionManager
	roomBus        RoomBus
	kafka          Messaging
	wsHub          Hub
	fiberApp       *fiber.App
	httpHandlers   map[string]interface{}
	wsHandlers     map[string]interface{}
	stopHub        context.CancelFunc
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	hubCtx, stopHub := context.WithCancel(context.Background())
	a.stopHub = stopHub

	a.postgresRepo = InitDatabase(a.config)
	a.sessionManager = InitSessionRedis(a.config)
	a.roomBus = InitRoomBus(a.config)
	a.kafka = SetupMessaging(a.config)
	a.wsHub = InitWebsocket(hubCtx, a.postgresRepo, a.roomBus)
	a.httpHandlers = SetupHTTPHandlers(a.postgresRepo, a.roomBus, a.kafka)
	a.wsHandlers = SetupWSHandlers(a.wsHub)
	a.fiberApp = SetupServer(a.config, a.sessionManager, a.httpHandlers, a.wsHandlers)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer func() {
		a.stopHub()
		if err := a.postgresRepo.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
		if err := a.sessionManager.Close(); err != nil {
			zap.L().Error("Failed to close session Redis", zap.Error(err))
		}
		if err := a.roomBus.Close(); err != nil {
			zap.L().Error("Failed to close room Redis", zap.Error(err))
		}
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close Kafka producer", zap.Error(err))
		}
	}()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())
}
