package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"lobby-service/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu        sync.Mutex
	rooms     map[string]domain.Room
	updates   []domain.RoomUpdate
	deleted   []string
	getErr    error
	updateErr error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: make(map[string]domain.Room)}
}

func (s *fakeStore) GetRoom(ctx context.Context, roomID string) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return domain.Room{}, s.getErr
	}
	room, ok := s.rooms[roomID]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return room, nil
}

func (s *fakeStore) UpdateRoom(ctx context.Context, roomID string, upd domain.RoomUpdate) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return domain.Room{}, s.updateErr
	}
	s.updates = append(s.updates, upd)
	return s.rooms[roomID], nil
}

func (s *fakeStore) DeleteRoom(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, roomID)
	delete(s.rooms, roomID)
	return nil
}

func (s *fakeStore) deletedRooms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}

func (s *fakeStore) recordedUpdates() []domain.RoomUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RoomUpdate(nil), s.updates...)
}

func newTestHub() (*Hub, *fakeStore) {
	store := newFakeStore()
	return NewHub(store, nil), store
}

func newTestClient() *domain.Client {
	return &domain.Client{
		ID:   uuid.New(),
		Send: make(chan []byte, 16),
		Done: make(chan struct{}),
	}
}

// joinClient runs the join path directly and drains the resulting
// JOIN_ROOM_SUCCESS from the sender's queue.
func joinClient(t *testing.T, h *Hub, c *domain.Client, roomID, userID, username string) {
	t.Helper()
	h.handleJoinRoom(c, domain.Envelope{
		Type:     domain.MsgJoinRoom,
		RoomID:   roomID,
		UserID:   userID,
		Username: username,
	})
	msg := receive(t, c)
	require.Equal(t, domain.MsgJoinRoomSuccess, msg["type"])
}

func receive(t *testing.T, c *domain.Client) map[string]interface{} {
	t.Helper()
	select {
	case payload := <-c.Send:
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	default:
		t.Fatal("expected a queued message")
		return nil
	}
}

func assertNoMessage(t *testing.T, c *domain.Client) {
	t.Helper()
	select {
	case payload := <-c.Send:
		t.Fatalf("unexpected message: %s", payload)
	default:
	}
}

func setJoinedAt(h *Hub, c *domain.Client, at time.Time) {
	h.mu.Lock()
	c.JoinedAt = at
	h.mu.Unlock()
}

func TestSnapshotAbsentRoom(t *testing.T) {
	h, _ := newTestHub()

	info := h.Snapshot("missing")

	assert.Equal(t, 0, info.PlayerCount)
	assert.NotNil(t, info.Players)
	assert.Empty(t, info.Players)
}

func TestSnapshotSortedByJoinTime(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	base := time.Now().UTC()
	setJoinedAt(h, first, base.Add(-time.Minute))
	setJoinedAt(h, second, base)

	info := h.Snapshot("R1")

	require.Equal(t, 2, info.PlayerCount)
	assert.Equal(t, "u1", info.Players[0].UserID)
	assert.Equal(t, "u2", info.Players[1].UserID)
}

func TestBroadcastExcludesSender(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	// drain the PLAYER_JOINED the first client saw for the second
	receive(t, first)

	h.broadcastToRoom("R1", domain.ChatBroadcast{Type: domain.MsgChatMessage}, first)

	assertNoMessage(t, first)
	msg := receive(t, second)
	assert.Equal(t, domain.MsgChatMessage, msg["type"])
}

func TestBroadcastUnknownRoomIsNoOp(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()
	joinClient(t, h, c, "R1", "u1", "alice")

	h.broadcastToRoom("other", domain.ChatBroadcast{Type: domain.MsgChatMessage}, nil)

	assertNoMessage(t, c)
}

func TestBroadcastDropsMembersWithFullQueue(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	second.Send = make(chan []byte, 1)
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)
	second.Send <- []byte("backlog")

	h.broadcastToRoom("R1", domain.ChatBroadcast{Type: domain.MsgChatMessage}, nil)

	assert.Equal(t, 1, h.RoomClientCount("R1"))
}

func TestUnregisterNotifiesRemainingMembers(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	h.mu.Lock()
	h.clients[first] = struct{}{}
	h.clients[second] = struct{}{}
	h.mu.Unlock()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)

	h.unregisterClient(second)

	select {
	case <-second.Done:
	default:
		t.Fatal("done channel should be closed after unregister")
	}
	msg := receive(t, first)
	assert.Equal(t, domain.MsgPlayerLeft, msg["type"])
	assert.Equal(t, "u2", msg["userId"])
	assert.Equal(t, 1, h.RoomClientCount("R1"))
}

func TestUnregisterIsIdempotent(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.unregisterClient(c)
	h.unregisterClient(c)
}

func TestDropRoomDiscardsMembership(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()
	joinClient(t, h, c, "R1", "u1", "alice")

	h.DropRoom("R1")

	assert.Equal(t, 0, h.RoomClientCount("R1"))
}

func TestSnapshotTieBreakIsStableForDuplicateUserIDs(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u1", "alice")
	receive(t, first)
	at := time.Now().UTC()
	setJoinedAt(h, first, at)
	setJoinedAt(h, second, at)

	want := []string{first.ID.String(), second.ID.String()}
	if want[1] < want[0] {
		want[0], want[1] = want[1], want[0]
	}

	info := h.Snapshot("R1")
	require.Equal(t, 2, info.PlayerCount)
	assert.Equal(t, "u1", info.Players[0].UserID)
	assert.Equal(t, "u1", info.Players[1].UserID)

	// same input, same order, every time
	for i := 0; i < 5; i++ {
		again := h.Snapshot("R1")
		assert.Equal(t, info.Players, again.Players)
	}
}

func TestSweepTerminatesUnresponsiveClient(t *testing.T) {
	h, _ := newTestHub()
	first := newTestClient()
	second := newTestClient()
	h.mu.Lock()
	h.clients[first] = struct{}{}
	h.clients[second] = struct{}{}
	second.Alive = true
	h.mu.Unlock()
	joinClient(t, h, first, "R1", "u1", "alice")
	joinClient(t, h, second, "R1", "u2", "bob")
	receive(t, first)

	// first never answered the previous probe
	h.sweep()

	select {
	case <-first.Done:
	default:
		t.Fatal("unresponsive client should be unregistered")
	}
	h.mu.RLock()
	_, stillRegistered := h.clients[first]
	h.mu.RUnlock()
	assert.False(t, stillRegistered)

	msg := receive(t, second)
	assert.Equal(t, domain.MsgPlayerLeft, msg["type"])
	assert.Equal(t, "u1", msg["userId"])
	assert.Equal(t, 1, h.RoomClientCount("R1"))
}

func TestSweepSparesClientThatAnswersProbe(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()
	h.mu.Lock()
	h.clients[c] = struct{}{}
	c.Alive = true
	h.mu.Unlock()
	joinClient(t, h, c, "R1", "u1", "alice")

	h.sweep()
	h.markAlive(c)
	h.sweep()

	select {
	case <-c.Done:
		t.Fatal("responsive client must not be unregistered")
	default:
	}
	h.mu.RLock()
	_, stillRegistered := h.clients[c]
	h.mu.RUnlock()
	assert.True(t, stillRegistered)
	assert.Equal(t, 1, h.RoomClientCount("R1"))
}

func TestSweepEvictsAfterTwoMissedProbes(t *testing.T) {
	h, _ := newTestHub()
	c := newTestClient()
	h.mu.Lock()
	h.clients[c] = struct{}{}
	c.Alive = true
	h.mu.Unlock()
	joinClient(t, h, c, "R1", "u1", "alice")

	h.sweep()
	h.sweep()

	select {
	case <-c.Done:
	default:
		t.Fatal("client silent through a full interval should be gone")
	}
	assert.Equal(t, 0, h.RoomClientCount("R1"))
}

type testBus struct {
	client *redis.Client
}

func (b *testBus) Subscribe(ctx context.Context, roomID string) *redis.PubSub {
	return b.client.Subscribe(ctx, fmt.Sprintf("room:%s", roomID))
}

func TestShutdownClosesRelaySubscriptions(t *testing.T) {
	store := newFakeStore()
	bus := &testBus{client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})}
	h := NewHub(store, bus)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	h.relay.start("R1")
	h.relay.mu.Lock()
	active := len(h.relay.subs)
	h.relay.mu.Unlock()
	require.Equal(t, 1, active)

	cancel()
	<-done

	h.relay.mu.Lock()
	remaining := len(h.relay.subs)
	h.relay.mu.Unlock()
	assert.Equal(t, 0, remaining)
}
