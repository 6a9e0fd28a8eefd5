package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"lobby-service/domain"

	"go.uber.org/zap"
)

// LeaveRoom decrements the player counter. The counter never drops below one
// here; an empty room is removed by the reconciliation pass, not by this call.
func (r *Repository) LeaveRoom(ctx context.Context, roomID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxPlayers, currentPlayers int
	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT max_players, current_players, status
		 FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	).Scan(&maxPlayers, &currentPlayers, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to query room: %w", err)
	}

	newCount := currentPlayers - 1
	if newCount < 1 {
		newCount = 1
	}
	newStatus := status
	if newCount < maxPlayers && status == domain.RoomStatusFull {
		newStatus = domain.RoomStatusWaiting
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

	zap.L().Info("User left room", zap.String("user_id", userID), zap.String("room_id", roomID))
	return nil
}
