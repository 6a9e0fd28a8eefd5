package domain

import (
	"fmt"
	"time"
)

// Inbound message kinds. The set is closed; anything else is rejected.
const (
	MsgJoinRoom    = "JOIN_ROOM"
	MsgLeaveRoom   = "LEAVE_ROOM"
	MsgJoinTeam    = "JOIN_TEAM"
	MsgChatMessage = "CHAT_MESSAGE"
	MsgPlayerReady = "PLAYER_READY"
	MsgStartGame   = "START_GAME"
)

// Outbound message kinds.
const (
	MsgWelcome          = "WELCOME"
	MsgJoinRoomSuccess  = "JOIN_ROOM_SUCCESS"
	MsgLeaveRoomSuccess = "LEAVE_ROOM_SUCCESS"
	MsgJoinTeamSuccess  = "JOIN_TEAM_SUCCESS"
	MsgPlayerJoined     = "PLAYER_JOINED"
	MsgPlayerLeft       = "PLAYER_LEFT"
	MsgTeamChange       = "TEAM_CHANGE"
	MsgNewHost          = "NEW_HOST"
	MsgError            = "ERROR"
)

// Envelope is an inbound client message. Fields beyond Type are only
// meaningful for the kinds that require them.
type Envelope struct {
	Type     string `json:"type"`
	RoomID   string `json:"roomId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
	Team     string `json:"team"`
	Role     string `json:"role"`
}

// Validate checks the per-kind required fields. A nil return means the
// envelope may be dispatched; the error text is sent back to the client.
func (e Envelope) Validate() error {
	switch e.Type {
	case "":
		return fmt.Errorf("message type not specified")
	case MsgJoinRoom:
		if e.RoomID == "" || e.UserID == "" || e.Username == "" {
			return fmt.Errorf("JOIN_ROOM requires roomId, userId and username")
		}
	case MsgLeaveRoom:
		if e.RoomID == "" || e.UserID == "" {
			return fmt.Errorf("LEAVE_ROOM requires roomId and userId")
		}
	case MsgJoinTeam:
		if e.RoomID == "" || e.UserID == "" || e.Username == "" || e.Team == "" || e.Role == "" {
			return fmt.Errorf("JOIN_TEAM requires roomId, userId, username, team and role")
		}
	case MsgChatMessage:
		if e.RoomID == "" || e.UserID == "" || e.Username == "" || e.Message == "" {
			return fmt.Errorf("CHAT_MESSAGE requires roomId, userId, username and message")
		}
	case MsgPlayerReady:
		if e.RoomID == "" || e.UserID == "" || e.Username == "" {
			return fmt.Errorf("PLAYER_READY requires roomId, userId and username")
		}
	case MsgStartGame:
		if e.RoomID == "" {
			return fmt.Errorf("START_GAME requires roomId")
		}
	default:
		return fmt.Errorf("unknown message type: %s", e.Type)
	}
	return nil
}

// Outbound envelopes. Every one carries a type discriminator and a timestamp.

type Welcome struct {
	Type      string    `json:"type"`
	ClientID  string    `json:"clientId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type JoinRoomSuccess struct {
	Type      string    `json:"type"`
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	RoomInfo  RoomInfo  `json:"roomInfo"`
	Timestamp time.Time `json:"timestamp"`
}

type LeaveRoomSuccess struct {
	Type      string    `json:"type"`
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type JoinTeamSuccess struct {
	Type      string    `json:"type"`
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Team      string    `json:"team"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type PlayerJoined struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	RoomInfo  RoomInfo  `json:"roomInfo"`
	Timestamp time.Time `json:"timestamp"`
}

type PlayerLeft struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	RoomInfo  RoomInfo  `json:"roomInfo"`
	Timestamp time.Time `json:"timestamp"`
}

type TeamChange struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Team      string    `json:"team"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatBroadcast struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type PlayerReady struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

type StartGame struct {
	Type      string    `json:"type"`
	RoomID    string    `json:"roomId"`
	Timestamp time.Time `json:"timestamp"`
}

type NewHost struct {
	Type        string    `json:"type"`
	NewHostID   string    `json:"newHostId"`
	NewHostName string    `json:"newHostName"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

type ErrorMessage struct {
	Type      string    `json:"type"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
