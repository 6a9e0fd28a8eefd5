package session

import (
	"context"
	"encoding/json"
	"fmt"
	"lobby-service/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SessionManager resolves bearer tokens against the session store shared with
// the identity provider.
type SessionManager struct {
	client *redis.Client
}

func NewSessionManager(redisAddr string, password string, db int) (*SessionManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	zap.L().Info("Connected to session Redis successfully")
	return &SessionManager{
		client: client,
	}, nil
}

func (sm *SessionManager) GetRedisClient() *redis.Client {
	return sm.client
}

// Verify resolves a session token to the identity it was issued for.
func (sm *SessionManager) Verify(ctx context.Context, token string) (domain.Identity, error) {
	data, err := sm.client.Get(ctx, token).Result()
	if err != nil {
		if err == redis.Nil {
			return domain.Identity{}, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthorized)
		}
		return domain.Identity{}, fmt.Errorf("failed to query session store: %w", err)
	}

	var userData map[string]string
	if err := json.Unmarshal([]byte(data), &userData); err != nil {
		return domain.Identity{}, fmt.Errorf("failed to parse session data: %w", err)
	}

	identity := domain.Identity{
		ID:          userData["user_id"],
		Email:       userData["email"],
		DisplayName: userData["username"],
	}
	if identity.DisplayName == "" {
		identity.DisplayName = identity.Email
	}
	if identity.ID == "" {
		return domain.Identity{}, fmt.Errorf("%w: session has no user id", domain.ErrUnauthorized)
	}
	return identity, nil
}

func (sm *SessionManager) Close() error {
	return sm.client.Close()
}
