package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"lobby-service/domain"

	"go.uber.org/zap"
)

// JoinRoom bumps the player counter after checking capacity and status. The
// row is locked for the duration of the transaction.
func (r *Repository) JoinRoom(ctx context.Context, roomID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxPlayers, currentPlayers int
	var status, hostID string
	err = tx.QueryRowContext(ctx,
		`SELECT max_players, current_players, status, host_id
		 FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	).Scan(&maxPlayers, &currentPlayers, &status, &hostID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to query room: %w", err)
	}

	if hostID == userID {
		return fmt.Errorf("%w: host is already in the room", domain.ErrConflict)
	}
	if status == domain.RoomStatusInProgress || status == domain.RoomStatusClosed {
		return fmt.Errorf("%w: room is not joinable", domain.ErrConflict)
	}
	if status == domain.RoomStatusFull || currentPlayers >= maxPlayers {
		return fmt.Errorf("%w: room is full", domain.ErrConflict)
	}

	newCount := currentPlayers + 1
	newStatus := domain.RoomStatusWaiting
	if newCount >= maxPlayers {
		newStatus = domain.RoomStatusFull
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET current_players = $1, status = $2 WHERE id = $3`,
		newCount, newStatus, roomID,
	)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("User joined room", zap.String("user_id", userID), zap.String("room_id", roomID))
	return nil
}
