package wsUsecase

import (
	"lobby-service/domain"
)

type Hub interface {
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
}
