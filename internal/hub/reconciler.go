package hub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lobby-service/domain"

	"go.uber.org/zap"
)

// RoomStore is the durable room record the hub reconciles against.
type RoomStore interface {
	GetRoom(ctx context.Context, roomID string) (domain.Room, error)
	UpdateRoom(ctx context.Context, roomID string, upd domain.RoomUpdate) (domain.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

// Reconciler pushes the hub's live membership into the room store: player
// count, waiting/full status, and host failover. Store failures are logged
// and abandoned; the next membership change triggers the retry.
type Reconciler struct {
	hub   *Hub
	store RoomStore
}

func newReconciler(h *Hub, store RoomStore) *Reconciler {
	return &Reconciler{hub: h, store: store}
}

// Schedule runs Sync after the debounce delay. Joins wait longer than leaves
// so a join immediately followed by a leave settles on the leave outcome.
func (r *Reconciler) Schedule(roomID string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		r.Sync(context.Background(), roomID)
	})
}

// Sync reconciles one room. An empty room is deleted from the store and
// dropped locally; otherwise the record is updated from the current snapshot,
// promoting the longest-present player to host when the recorded host has no
// live connection.
func (r *Reconciler) Sync(ctx context.Context, roomID string) {
	log := zap.L().With(zap.String("room_id", roomID))

	info := r.hub.Snapshot(roomID)
	if info.PlayerCount == 0 {
		r.deleteRoom(ctx, roomID, log)
		return
	}

	record, err := r.store.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Debug("room has no durable record, skipping sync")
		} else {
			log.Warn("failed to fetch room record", zap.Error(err))
		}
		return
	}

	// The fetch yielded; act on the membership as it stands now.
	info = r.hub.Snapshot(roomID)
	if info.PlayerCount == 0 {
		r.deleteRoom(ctx, roomID, log)
		return
	}

	hostPresent := false
	for _, p := range info.Players {
		if p.UserID == record.HostID {
			hostPresent = true
			break
		}
	}

	count := info.PlayerCount
	status := domain.RoomStatusWaiting
	if count >= record.MaxPlayers {
		status = domain.RoomStatusFull
	}
	upd := domain.RoomUpdate{
		CurrentPlayers: &count,
		Status:         &status,
	}

	var newHost *domain.Player
	if !hostPresent {
		p := info.Players[0]
		newHost = &p
		upd.HostID = &p.UserID
		upd.HostName = &p.Username
	}

	if _, err := r.store.UpdateRoom(ctx, roomID, upd); err != nil {
		log.Warn("failed to update room record", zap.Error(err))
		return
	}
	log.Info("room reconciled",
		zap.Int("player_count", count),
		zap.String("status", status))

	if newHost != nil {
		r.hub.BroadcastToRoom(roomID, domain.NewHost{
			Type:        domain.MsgNewHost,
			NewHostID:   newHost.UserID,
			NewHostName: newHost.Username,
			Message:     fmt.Sprintf("%s is now the room host", newHost.Username),
			Timestamp:   time.Now().UTC(),
		})
	}
}

func (r *Reconciler) deleteRoom(ctx context.Context, roomID string, log *zap.Logger) {
	if err := r.store.DeleteRoom(ctx, roomID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Warn("failed to delete empty room", zap.Error(err))
		return
	}
	r.hub.DropRoom(roomID)
	log.Info("empty room deleted")
}
