package hub

import (
	"encoding/json"
	"fmt"
	"time"

	"lobby-service/domain"

	"go.uber.org/zap"
)

// dispatch decodes one inbound frame and routes it. A malformed or invalid
// frame only ever costs the sender an ERROR reply; it never tears down the
// connection or the hub.
func (h *Hub) dispatch(client *domain.Client, payload []byte) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("panic while handling message",
				zap.String("client_id", client.ID.String()),
				zap.Any("panic", r))
			h.sendError(client, "internal server error")
		}
	}()

	var env domain.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		h.sendError(client, "invalid message format")
		return
	}
	if err := env.Validate(); err != nil {
		h.sendError(client, err.Error())
		return
	}

	switch env.Type {
	case domain.MsgJoinRoom:
		h.handleJoinRoom(client, env)
	case domain.MsgLeaveRoom:
		h.handleLeaveRoom(client, env)
	case domain.MsgJoinTeam:
		h.handleJoinTeam(client, env)
	case domain.MsgChatMessage:
		h.handleChat(client, env)
	case domain.MsgPlayerReady:
		h.handlePlayerReady(client, env)
	case domain.MsgStartGame:
		h.handleStartGame(client, env)
	}
}

func (h *Hub) handleJoinRoom(client *domain.Client, env domain.Envelope) {
	// A connection is a member of at most one room; rejoining the same room
	// also runs the leave path first, exactly like switching rooms.
	h.leaveRoom(client, "")

	h.mu.Lock()
	set, ok := h.rooms[env.RoomID]
	if !ok {
		set = make(map[*domain.Client]struct{})
		h.rooms[env.RoomID] = set
	}
	set[client] = struct{}{}
	client.RoomID = env.RoomID
	client.UserID = env.UserID
	client.Username = env.Username
	client.JoinedAt = time.Now().UTC()
	h.mu.Unlock()

	if !ok && h.relay != nil {
		h.relay.start(env.RoomID)
	}

	zap.L().Info("client joined room",
		zap.String("client_id", client.ID.String()),
		zap.String("room_id", env.RoomID),
		zap.String("user_id", env.UserID))

	info := h.Snapshot(env.RoomID)
	now := time.Now().UTC()

	h.sendToOne(client, domain.JoinRoomSuccess{
		Type:      domain.MsgJoinRoomSuccess,
		RoomID:    env.RoomID,
		UserID:    env.UserID,
		Username:  env.Username,
		Message:   fmt.Sprintf("You joined room %s", env.RoomID),
		RoomInfo:  info,
		Timestamp: now,
	})
	h.broadcastToRoom(env.RoomID, domain.PlayerJoined{
		Type:      domain.MsgPlayerJoined,
		UserID:    env.UserID,
		Username:  env.Username,
		RoomInfo:  info,
		Timestamp: now,
	}, client)

	h.reconciler.Schedule(env.RoomID, syncAfterJoin)
}

func (h *Hub) handleLeaveRoom(client *domain.Client, env domain.Envelope) {
	h.leaveRoom(client, env.RoomID)
}

// leaveRoom removes the client from its room, confirms to the sender, tells
// the remaining members and schedules reconciliation. target "" means the
// client's current room. No-op when the client is not a tracked member of the
// target. Shared by LEAVE_ROOM, room switches, disconnects and liveness
// eviction.
func (h *Hub) leaveRoom(client *domain.Client, target string) {
	h.mu.Lock()
	roomID := client.RoomID
	if roomID == "" || (target != "" && target != roomID) {
		h.mu.Unlock()
		return
	}
	set, ok := h.rooms[roomID]
	if !ok {
		client.RoomID = ""
		h.mu.Unlock()
		return
	}
	if _, member := set[client]; !member {
		client.RoomID = ""
		h.mu.Unlock()
		return
	}
	delete(set, client)
	empty := len(set) == 0
	if empty {
		delete(h.rooms, roomID)
	}
	userID := client.UserID
	username := client.Username
	client.RoomID = ""
	h.mu.Unlock()

	zap.L().Info("client left room",
		zap.String("client_id", client.ID.String()),
		zap.String("room_id", roomID),
		zap.String("user_id", userID))

	now := time.Now().UTC()
	h.sendToOne(client, domain.LeaveRoomSuccess{
		Type:      domain.MsgLeaveRoomSuccess,
		RoomID:    roomID,
		UserID:    userID,
		Username:  username,
		Message:   fmt.Sprintf("You left room %s", roomID),
		Timestamp: now,
	})

	if empty {
		if h.relay != nil {
			h.relay.stop(roomID)
		}
	} else {
		h.broadcastToRoom(roomID, domain.PlayerLeft{
			Type:      domain.MsgPlayerLeft,
			UserID:    userID,
			Username:  username,
			RoomInfo:  h.Snapshot(roomID),
			Timestamp: now,
		}, client)
	}

	h.reconciler.Schedule(roomID, syncAfterLeave)
}

func (h *Hub) handleJoinTeam(client *domain.Client, env domain.Envelope) {
	if !h.isMember(client, env.RoomID) {
		h.sendError(client, "you must join the room before picking a team")
		return
	}

	now := time.Now().UTC()
	h.sendToOne(client, domain.JoinTeamSuccess{
		Type:      domain.MsgJoinTeamSuccess,
		RoomID:    env.RoomID,
		UserID:    env.UserID,
		Username:  env.Username,
		Team:      env.Team,
		Role:      env.Role,
		Message:   fmt.Sprintf("You joined team %s", env.Team),
		Timestamp: now,
	})
	h.broadcastToRoom(env.RoomID, domain.TeamChange{
		Type:      domain.MsgTeamChange,
		UserID:    env.UserID,
		Username:  env.Username,
		Team:      env.Team,
		Role:      env.Role,
		Timestamp: now,
	}, nil)
}

func (h *Hub) handleChat(client *domain.Client, env domain.Envelope) {
	if !h.isMember(client, env.RoomID) {
		h.sendError(client, "you must join the room before chatting")
		return
	}

	h.broadcastToRoom(env.RoomID, domain.ChatBroadcast{
		Type:      domain.MsgChatMessage,
		UserID:    env.UserID,
		Username:  env.Username,
		Message:   env.Message,
		Timestamp: time.Now().UTC(),
	}, nil)
}

func (h *Hub) handlePlayerReady(client *domain.Client, env domain.Envelope) {
	h.broadcastToRoom(env.RoomID, domain.PlayerReady{
		Type:      domain.MsgPlayerReady,
		UserID:    env.UserID,
		Username:  env.Username,
		Timestamp: time.Now().UTC(),
	}, nil)
}

func (h *Hub) handleStartGame(client *domain.Client, env domain.Envelope) {
	h.broadcastToRoom(env.RoomID, domain.StartGame{
		Type:      domain.MsgStartGame,
		RoomID:    env.RoomID,
		Timestamp: time.Now().UTC(),
	}, nil)
}

func (h *Hub) isMember(client *domain.Client, roomID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if client.RoomID != roomID {
		return false
	}
	_, ok := h.rooms[roomID][client]
	return ok
}

func (h *Hub) sendError(client *domain.Client, msg string) {
	h.sendToOne(client, domain.ErrorMessage{
		Type:      domain.MsgError,
		Error:     msg,
		Timestamp: time.Now().UTC(),
	})
}
