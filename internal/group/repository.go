package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, g *Group) (*Group, error) {
	query := `
		INSERT INTO groups (id, room_code, name, days_in_period, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, room_code, name, days_in_period, created_by, created_at, updated_at
	`

	created := &Group{}
	err := r.db.QueryRowContext(ctx, query, g.ID, g.RoomCode, g.Name, g.DaysInPeriod, g.CreatedBy).Scan(
		&created.ID,
		&created.RoomCode,
		&created.Name,
		&created.DaysInPeriod,
		&created.CreatedBy,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "room_code") {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return created, nil
}

// GetByCode retrieves a group by its room code
func (r *Repository) GetByCode(ctx context.Context, code string) (*Group, error) {
	query := `
		SELECT id, room_code, name, days_in_period, created_by, created_at, updated_at
		FROM groups
		WHERE room_code = $1
	`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(strings.TrimSpace(code))).Scan(
		&g.ID,
		&g.RoomCode,
		&g.Name,
		&g.DaysInPeriod,
		&g.CreatedBy,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// CodeExists reports whether a room code is already taken
func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM groups WHERE room_code = $1)`
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check room code: %w", err)
	}
	return exists, nil
}

// ListByCreator retrieves all groups created by the given user
func (r *Repository) ListByCreator(ctx context.Context, userID string) ([]*Group, error) {
	query := `
		SELECT id, room_code, name, days_in_period, created_by, created_at, updated_at
		FROM groups
		WHERE created_by = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		g := &Group{}
		if err := rows.Scan(
			&g.ID,
			&g.RoomCode,
			&g.Name,
			&g.DaysInPeriod,
			&g.CreatedBy,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// Update modifies a group's name and/or days-in-period
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*Group, error) {
	query := `
		UPDATE groups
		SET name = COALESCE($2, name),
		    days_in_period = COALESCE($3, days_in_period),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, room_code, name, days_in_period, created_by, created_at, updated_at
	`

	g := &Group{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.DaysInPeriod).Scan(
		&g.ID,
		&g.RoomCode,
		&g.Name,
		&g.DaysInPeriod,
		&g.CreatedBy,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return g, nil
}

// Delete removes a group and, via cascading constraints, its members and splits
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}
