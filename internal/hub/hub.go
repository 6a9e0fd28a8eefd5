package hub

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"lobby-service/domain"

	"github.com/fasthttp/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	sweepInterval  = 30 * time.Second
	maxMessageSize = 1024

	// Reconciliation debounce after membership changes.
	syncAfterJoin  = 2 * time.Second
	syncAfterLeave = 1 * time.Second
)

type eventKind int

const (
	evRegister eventKind = iota
	evUnregister
	evInbound
)

type event struct {
	kind    eventKind
	client  *domain.Client
	payload []byte
}

// Hub owns the connection registry and the room membership table. All
// mutation goes through the Run loop, so per-room broadcast order matches
// dispatch order; readers elsewhere (reconciler, relay) take the RWMutex.
type Hub struct {
	mu      sync.RWMutex
	clients map[*domain.Client]struct{}
	rooms   map[string]map[*domain.Client]struct{}

	events     chan event
	reconciler *Reconciler
	relay      *relay
}

// NewHub wires the hub with its room store. bus may be nil, in which case
// cross-process room events are not relayed.
func NewHub(store RoomStore, bus RoomBus) *Hub {
	h := &Hub{
		clients: make(map[*domain.Client]struct{}),
		rooms:   make(map[string]map[*domain.Client]struct{}),
		events:  make(chan event, 512),
	}
	h.reconciler = newReconciler(h, store)
	if bus != nil {
		h.relay = newRelay(h, bus)
	}
	return h
}

// Run processes registration, disconnects, inbound messages and liveness
// ticks one at a time.
func (h *Hub) Run(ctx context.Context) {
	zap.L().Info("hub is running")
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-h.events:
			switch ev.kind {
			case evRegister:
				h.registerClient(ev.client)
			case evUnregister:
				h.unregisterClient(ev.client)
			case evInbound:
				h.dispatch(ev.client, ev.payload)
			}
		case <-ticker.C:
			h.sweep()
		case <-ctx.Done():
			if h.relay != nil {
				h.relay.stopAll()
			}
			zap.L().Info("hub is shutting down")
			return
		}
	}
}

// RegisterClient hands a freshly accepted connection to the Run loop.
func (h *Hub) RegisterClient(client *domain.Client) {
	h.events <- event{kind: evRegister, client: client}
}

// UnregisterClient routes a closed or broken connection through the same
// leave path as an explicit LEAVE_ROOM.
func (h *Hub) UnregisterClient(client *domain.Client) {
	h.events <- event{kind: evUnregister, client: client}
}

func (h *Hub) registerClient(client *domain.Client) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	client.Alive = true
	h.mu.Unlock()

	zap.L().Info("client registered", zap.String("client_id", client.ID.String()))

	go h.readPump(client)
	go h.writePump(client)
}

func (h *Hub) unregisterClient(client *domain.Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	h.mu.Unlock()

	// Route through the leave path first so the room hears PLAYER_LEFT.
	h.leaveRoom(client, "")

	close(client.Done)
	zap.L().Info("client unregistered", zap.String("client_id", client.ID.String()))
}

// sweep terminates connections that did not answer the previous probe and
// probes the rest. Runs on the Run loop, so at most two intervals pass before
// a vanished client is reclaimed.
func (h *Hub) sweep() {
	var dead, probe []*domain.Client

	h.mu.Lock()
	for c := range h.clients {
		if !c.Alive {
			dead = append(dead, c)
			continue
		}
		c.Alive = false
		probe = append(probe, c)
	}
	h.mu.Unlock()

	for _, c := range dead {
		zap.L().Info("terminating unresponsive connection", zap.String("client_id", c.ID.String()))
		if c.Conn != nil {
			c.Conn.Close()
		}
		h.unregisterClient(c)
	}

	for _, c := range probe {
		if c.Conn != nil {
			go h.ping(c)
		}
	}
}

func (h *Hub) ping(c *domain.Client) {
	c.WriteLock.Lock()
	defer c.WriteLock.Unlock()
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		// read side notices the broken transport and unregisters
		zap.L().Debug("ping failed", zap.String("client_id", c.ID.String()), zap.Error(err))
	}
}

func (h *Hub) markAlive(c *domain.Client) {
	h.mu.Lock()
	c.Alive = true
	h.mu.Unlock()
}

func (h *Hub) readPump(client *domain.Client) {
	defer func() {
		h.UnregisterClient(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetPongHandler(func(string) error {
		h.markAlive(client)
		return nil
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Debug("client closed connection", zap.String("client_id", client.ID.String()))
			} else {
				zap.L().Debug("client read error", zap.String("client_id", client.ID.String()), zap.Error(err))
			}
			break
		}
		h.events <- event{kind: evInbound, client: client, payload: payload}
	}
}

func (h *Hub) writePump(client *domain.Client) {
	defer client.Conn.Close()

	for {
		select {
		case msg := <-client.Send:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				zap.L().Debug("websocket write error", zap.Error(err))
				h.UnregisterClient(client)
				return
			}
		case <-client.Done:
			client.WriteLock.Lock()
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			client.WriteLock.Unlock()
			return
		}
	}
}

// Snapshot returns the live membership of a room, players sorted by join
// time with connection id as tie-break. An absent room yields {0, []}.
func (h *Hub) Snapshot(roomID string) domain.RoomInfo {
	type member struct {
		player domain.Player
		connID string
	}

	h.mu.RLock()
	set := h.rooms[roomID]
	members := make([]member, 0, len(set))
	for c := range set {
		members = append(members, member{
			player: domain.Player{
				UserID:   c.UserID,
				Username: c.Username,
				JoinedAt: c.JoinedAt,
			},
			connID: c.ID.String(),
		})
	}
	h.mu.RUnlock()

	sort.Slice(members, func(i, j int) bool {
		if members[i].player.JoinedAt.Equal(members[j].player.JoinedAt) {
			return members[i].connID < members[j].connID
		}
		return members[i].player.JoinedAt.Before(members[j].player.JoinedAt)
	})

	players := make([]domain.Player, 0, len(members))
	for _, m := range members {
		players = append(players, m.player)
	}
	return domain.RoomInfo{PlayerCount: len(players), Players: players}
}

// RoomClientCount reports the number of live connections in a room.
func (h *Hub) RoomClientCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// DropRoom discards any local remnant of a room after the store reported it
// deleted.
func (h *Hub) DropRoom(roomID string) {
	h.mu.Lock()
	_, existed := h.rooms[roomID]
	delete(h.rooms, roomID)
	h.mu.Unlock()

	if existed && h.relay != nil {
		h.relay.stop(roomID)
	}
}

// BroadcastToRoom delivers an envelope to every live member of the room.
func (h *Hub) BroadcastToRoom(roomID string, msg interface{}) {
	h.broadcastToRoom(roomID, msg, nil)
}

// broadcastToRoom serializes once and fans out to the room, skipping exclude.
// Members whose transport is gone are dropped from the set on the way.
func (h *Hub) broadcastToRoom(roomID string, msg interface{}, exclude *domain.Client) {
	payload, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("failed to marshal broadcast message", zap.Error(err))
		return
	}

	h.mu.RLock()
	set, ok := h.rooms[roomID]
	recipients := make([]*domain.Client, 0, len(set))
	for c := range set {
		if c != exclude {
			recipients = append(recipients, c)
		}
	}
	h.mu.RUnlock()

	if !ok {
		zap.L().Debug("broadcast to unknown room", zap.String("room_id", roomID))
		return
	}

	var stale []*domain.Client
	for _, c := range recipients {
		if !trySend(c, payload) {
			stale = append(stale, c)
		}
	}

	if len(stale) == 0 {
		return
	}
	h.mu.Lock()
	if set, ok := h.rooms[roomID]; ok {
		for _, c := range stale {
			delete(set, c)
		}
		if len(set) == 0 {
			delete(h.rooms, roomID)
		}
	}
	h.mu.Unlock()
}

// sendToOne delivers to a single connection, never raising; false means the
// transport was gone or its queue full.
func (h *Hub) sendToOne(client *domain.Client, msg interface{}) bool {
	payload, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("failed to marshal message", zap.Error(err))
		return false
	}
	if !trySend(client, payload) {
		zap.L().Debug("dropping message for client", zap.String("client_id", client.ID.String()))
		return false
	}
	return true
}

func trySend(c *domain.Client, payload []byte) bool {
	select {
	case <-c.Done:
		return false
	default:
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}
