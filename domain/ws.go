package domain

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is one live WebSocket connection. The binding fields (UserID,
// Username, RoomID, JoinedAt) and Alive are owned by the hub and must only be
// touched under its lock.
type Client struct {
	ID        uuid.UUID
	Conn      *websocket.Conn
	Send      chan []byte
	Done      chan struct{}
	WriteLock sync.Mutex

	UserID   string
	Username string
	RoomID   string
	JoinedAt time.Time
	Alive    bool
}
