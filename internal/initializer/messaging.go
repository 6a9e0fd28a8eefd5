package initializer

import (
	"lobby-service/config"
	"lobby-service/internal/messaging"
)

func InitMessaging(appConfig config.Config) *messaging.Producer {
	return messaging.NewProducer(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
}
