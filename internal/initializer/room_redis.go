package initializer

import (
	"fmt"

	"lobby-service/config"
	"lobby-service/infra/redisbus"

	"go.uber.org/zap"
)

func InitRoomRedis(appConfig config.Config) *redisbus.Bus {
	address := fmt.Sprintf("%s:%s", appConfig.RoomRedis.Host, appConfig.RoomRedis.Port)

	bus, err := redisbus.NewBus(address, appConfig.RoomRedis.Password, appConfig.RoomRedis.DB)
	if err != nil {
		zap.L().Fatal("Failed to connect to room Redis", zap.Error(err))
	}
	return bus
}
