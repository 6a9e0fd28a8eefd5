package postgres

import (
	"context"
	"fmt"
	"lobby-service/domain"

	"go.uber.org/zap"
)

// ListRooms returns rooms newest first. An empty status means all statuses;
// publicOnly drops private rooms.
func (r *Repository) ListRooms(ctx context.Context, status string, publicOnly bool) ([]domain.Room, error) {
	query := `
		SELECT id, room_name, max_players, current_players, status, is_private,
		       host_id, host_name, created_at
		FROM rooms
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = FALSE OR is_private = FALSE)
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, status, publicOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		err := rows.Scan(
			&room.ID, &room.RoomName, &room.MaxPlayers, &room.CurrentPlayers,
			&room.Status, &room.IsPrivate, &room.HostID, &room.HostName, &room.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room data: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	zap.L().Debug("Listed rooms", zap.Int("count", len(rooms)))
	return rooms, nil
}
