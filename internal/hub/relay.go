package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"lobby-service/domain"
	"lobby-service/infra/redisbus"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RoomBus is the cross-process room event feed.
type RoomBus interface {
	Subscribe(ctx context.Context, roomID string) *redis.PubSub
}

// relay keeps one bus subscription per active room and re-broadcasts
// membership events published by other instances into the local room.
type relay struct {
	hub *Hub
	bus RoomBus

	mu   sync.Mutex
	subs map[string]*redis.PubSub
}

func newRelay(h *Hub, bus RoomBus) *relay {
	return &relay{
		hub:  h,
		bus:  bus,
		subs: make(map[string]*redis.PubSub),
	}
}

func (rl *relay) start(roomID string) {
	rl.mu.Lock()
	if _, ok := rl.subs[roomID]; ok {
		rl.mu.Unlock()
		return
	}
	sub := rl.bus.Subscribe(context.Background(), roomID)
	rl.subs[roomID] = sub
	rl.mu.Unlock()

	zap.L().Info("room relay started", zap.String("room_id", roomID))
	go rl.loop(roomID, sub)
}

func (rl *relay) stop(roomID string) {
	rl.mu.Lock()
	sub, ok := rl.subs[roomID]
	if ok {
		delete(rl.subs, roomID)
	}
	rl.mu.Unlock()

	if ok {
		sub.Close()
		zap.L().Info("room relay stopped", zap.String("room_id", roomID))
	}
}

// stopAll closes every live subscription; called when the hub shuts down.
func (rl *relay) stopAll() {
	rl.mu.Lock()
	subs := rl.subs
	rl.subs = make(map[string]*redis.PubSub)
	rl.mu.Unlock()

	for roomID, sub := range subs {
		sub.Close()
		zap.L().Info("room relay stopped", zap.String("room_id", roomID))
	}
}

func (rl *relay) loop(roomID string, sub *redis.PubSub) {
	for msg := range sub.Channel() {
		var ev redisbus.RoomEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			zap.L().Warn("malformed room event", zap.String("room_id", roomID), zap.Error(err))
			continue
		}
		rl.handle(roomID, ev)
	}
}

func (rl *relay) handle(roomID string, ev redisbus.RoomEvent) {
	info := rl.hub.Snapshot(roomID)
	now := time.Now().UTC()

	switch ev.Type {
	case redisbus.MsgPlayerJoined:
		rl.hub.BroadcastToRoom(roomID, domain.PlayerJoined{
			Type:      domain.MsgPlayerJoined,
			UserID:    ev.Data["userId"],
			Username:  ev.Data["username"],
			RoomInfo:  info,
			Timestamp: now,
		})
	case redisbus.MsgPlayerLeft:
		rl.hub.BroadcastToRoom(roomID, domain.PlayerLeft{
			Type:      domain.MsgPlayerLeft,
			UserID:    ev.Data["userId"],
			Username:  ev.Data["username"],
			RoomInfo:  info,
			Timestamp: now,
		})
	default:
		zap.L().Debug("ignoring room event", zap.String("type", ev.Type))
	}
}
