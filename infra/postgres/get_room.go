package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"lobby-service/domain"
)

func (r *Repository) GetRoom(ctx context.Context, roomID string) (domain.Room, error) {
	query := `
		SELECT id, room_name, max_players, current_players, status, is_private,
		       host_id, host_name, created_at, COALESCE(started_at, 'epoch'::timestamptz)
		FROM rooms WHERE id = $1
	`
	var room domain.Room
	err := r.db.QueryRowContext(ctx, query, roomID).Scan(
		&room.ID, &room.RoomName, &room.MaxPlayers, &room.CurrentPlayers,
		&room.Status, &room.IsPrivate, &room.HostID, &room.HostName,
		&room.CreatedAt, &room.StartedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Room{}, fmt.Errorf("%w: room not found", domain.ErrNotFound)
		}
		return domain.Room{}, fmt.Errorf("failed to query room: %w", err)
	}
	return room, nil
}
