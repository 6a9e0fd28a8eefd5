package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"lobby-service/domain"
	"lobby-service/infra/redisbus"
	"lobby-service/internal/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	rooms    map[string]domain.Room
	joinErr  error
	leaveErr error
	startErr error
	closeErr error
	listErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rooms: make(map[string]domain.Room)}
}

func (r *fakeRepository) CreateRoom(ctx context.Context, roomName string, maxPlayers int, isPrivate bool, hostID, hostName string) (domain.Room, error) {
	if roomName == "" {
		return domain.Room{}, domain.ErrInvalidInput
	}
	room := domain.Room{
		ID:             "room-1",
		RoomName:       roomName,
		MaxPlayers:     maxPlayers,
		CurrentPlayers: 1,
		Status:         domain.RoomStatusWaiting,
		IsPrivate:      isPrivate,
		HostID:         hostID,
		HostName:       hostName,
	}
	r.rooms[room.ID] = room
	return room, nil
}

func (r *fakeRepository) GetRoom(ctx context.Context, roomID string) (domain.Room, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return room, nil
}

func (r *fakeRepository) ListRooms(ctx context.Context, status string, publicOnly bool) ([]domain.Room, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var rooms []domain.Room
	for _, room := range r.rooms {
		if status != "" && room.Status != status {
			continue
		}
		if publicOnly && room.IsPrivate {
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *fakeRepository) JoinRoom(ctx context.Context, roomID, userID string) error {
	return r.joinErr
}

func (r *fakeRepository) LeaveRoom(ctx context.Context, roomID, userID string) error {
	return r.leaveErr
}

func (r *fakeRepository) StartGame(ctx context.Context, roomID, userID string) error {
	return r.startErr
}

func (r *fakeRepository) CloseRoom(ctx context.Context, roomID, userID string) error {
	return r.closeErr
}

type publishedEvent struct {
	roomID    string
	eventType string
	data      map[string]string
}

type fakeBus struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (b *fakeBus) PublishRoomEvent(ctx context.Context, roomID, msgType string, data map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, publishedEvent{roomID: roomID, eventType: msgType, data: data})
}

func (b *fakeBus) published() []publishedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]publishedEvent(nil), b.events...)
}

type fakeProducer struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakeProducer) Publish(ctx context.Context, eventType, roomID string, data map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{roomID: roomID, eventType: eventType, data: data})
}

func (p *fakeProducer) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

func TestCreateRoomSuccess(t *testing.T) {
	repo := newFakeRepository()
	producer := &fakeProducer{}
	usecase := NewCreateRoomUseCase(repo, producer)

	room, status, err := usecase.Execute(context.Background(), "word night", 4, false, "u1", "alice")

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "word night", room.RoomName)
	assert.Equal(t, "u1", room.HostID)

	require.Eventually(t, func() bool {
		return len(producer.published()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, messaging.EventRoomCreated, producer.published()[0].eventType)
}

func TestCreateRoomInvalidInput(t *testing.T) {
	repo := newFakeRepository()
	producer := &fakeProducer{}
	usecase := NewCreateRoomUseCase(repo, producer)

	_, status, err := usecase.Execute(context.Background(), "", 4, false, "u1", "alice")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, producer.published())
}

func TestGetRoomNotFound(t *testing.T) {
	repo := newFakeRepository()
	usecase := NewGetRoomUseCase(repo)

	_, status, err := usecase.Execute(context.Background(), "missing")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListRoomsFiltersByStatus(t *testing.T) {
	repo := newFakeRepository()
	repo.rooms["a"] = domain.Room{ID: "a", Status: domain.RoomStatusWaiting}
	repo.rooms["b"] = domain.Room{ID: "b", Status: domain.RoomStatusInProgress}
	usecase := NewListRoomsUseCase(repo)

	rooms, status, err := usecase.Execute(context.Background(), domain.RoomStatusWaiting, false)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, rooms, 1)
	assert.Equal(t, "a", rooms[0].ID)
}

func TestJoinRoomPublishesBusEvent(t *testing.T) {
	repo := newFakeRepository()
	bus := &fakeBus{}
	usecase := NewJoinRoomUseCase(repo, bus)

	status, err := usecase.Execute(context.Background(), "room-1", "u2", "bob")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	require.Eventually(t, func() bool {
		return len(bus.published()) == 1
	}, time.Second, 10*time.Millisecond)
	event := bus.published()[0]
	assert.Equal(t, redisbus.MsgPlayerJoined, event.eventType)
	assert.Equal(t, "room-1", event.roomID)
	assert.Equal(t, "u2", event.data["userId"])
}

func TestJoinRoomConflict(t *testing.T) {
	repo := newFakeRepository()
	repo.joinErr = domain.ErrConflict
	bus := &fakeBus{}
	usecase := NewJoinRoomUseCase(repo, bus)

	status, err := usecase.Execute(context.Background(), "room-1", "u2", "bob")

	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, http.StatusConflict, status)
	assert.Empty(t, bus.published())
}

func TestLeaveRoomPublishesBusEvent(t *testing.T) {
	repo := newFakeRepository()
	bus := &fakeBus{}
	usecase := NewLeaveRoomUseCase(repo, bus)

	status, err := usecase.Execute(context.Background(), "room-1", "u2", "bob")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	require.Eventually(t, func() bool {
		return len(bus.published()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, redisbus.MsgPlayerLeft, bus.published()[0].eventType)
}

func TestStartGameForbiddenForNonHost(t *testing.T) {
	repo := newFakeRepository()
	repo.startErr = domain.ErrForbidden
	producer := &fakeProducer{}
	usecase := NewStartGameUseCase(repo, producer)

	status, err := usecase.Execute(context.Background(), "room-1", "u2")

	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Empty(t, producer.published())
}

func TestStartGamePublishesLifecycleEvent(t *testing.T) {
	repo := newFakeRepository()
	producer := &fakeProducer{}
	usecase := NewStartGameUseCase(repo, producer)

	status, err := usecase.Execute(context.Background(), "room-1", "u1")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	require.Eventually(t, func() bool {
		return len(producer.published()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, messaging.EventGameStarted, producer.published()[0].eventType)
}

func TestCloseRoomMapsUnknownErrors(t *testing.T) {
	repo := newFakeRepository()
	repo.closeErr = errors.New("connection reset")
	producer := &fakeProducer{}
	usecase := NewCloseRoomUseCase(repo, producer)

	status, err := usecase.Execute(context.Background(), "room-1", "u1")

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
}
