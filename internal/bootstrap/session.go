package bootstrap

import (
	"context"

	"lobby-service/config"
	"lobby-service/domain"
	"lobby-service/internal/initializer"

	"github.com/redis/go-redis/v9"
)

type SessionManager interface {
	GetRedisClient() *redis.Client
	Verify(ctx context.Context, token string) (domain.Identity, error)
	Close() error
}

func InitSessionRedis(config config.Config) SessionManager {
	return initializer.InitSessionRedis(config)
}
