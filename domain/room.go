package domain

import "time"

// Room status values as persisted in the durable record.
const (
	RoomStatusWaiting    = "waiting"
	RoomStatusFull       = "full"
	RoomStatusInProgress = "in_progress"
	RoomStatusClosed     = "closed"
)

// Room is the durable room record owned by the external store. Live presence
// is never read from here; it is reconciled in from the hub.
type Room struct {
	ID             string    `json:"id"`
	RoomName       string    `json:"room_name"`
	MaxPlayers     int       `json:"max_players"`
	CurrentPlayers int       `json:"current_players"`
	Status         string    `json:"status"`
	IsPrivate      bool      `json:"is_private"`
	HostID         string    `json:"host_id"`
	HostName       string    `json:"host_name"`
	CreatedAt      time.Time `json:"created_at"`
	StartedAt      time.Time `json:"started_at,omitempty"`
}

// RoomUpdate is a partial update of the durable record. Nil fields are left
// untouched.
type RoomUpdate struct {
	CurrentPlayers *int
	Status         *string
	HostID         *string
	HostName       *string
}

// Player is one live participant as seen in a room snapshot.
type Player struct {
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`
}

// RoomInfo is a point-in-time snapshot of live membership. Players are sorted
// by join time (connection id breaks ties) so "first player" is well defined.
type RoomInfo struct {
	PlayerCount int      `json:"playerCount"`
	Players     []Player `json:"players"`
}

// Identity is what the external identity provider vouches for.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}
