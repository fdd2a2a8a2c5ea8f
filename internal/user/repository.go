package user

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles user profile persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or replaces the profile for a user
func (r *Repository) Upsert(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO user_profiles (user_id, last_group_id, last_room_name, last_visited)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET last_group_id = EXCLUDED.last_group_id,
		    last_room_name = EXCLUDED.last_room_name,
		    last_visited = EXCLUDED.last_visited
	`

	if _, err := r.db.ExecContext(ctx, query, p.UserID, p.LastGroupID, p.LastRoomName, p.LastVisited); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// Get retrieves the profile for a user, or nil when none exists
func (r *Repository) Get(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT user_id, last_group_id, last_room_name, last_visited
		FROM user_profiles
		WHERE user_id = $1
	`

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&p.LastGroupID,
		&p.LastRoomName,
		&p.LastVisited,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}
