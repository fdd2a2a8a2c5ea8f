package split

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/akaul/fairsplit/internal/calc"
)

// Repository handles custom split data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new split repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new custom split into the database
func (r *Repository) Create(ctx context.Context, s *CustomSplit) (*CustomSplit, error) {
	query := `
		INSERT INTO custom_splits (group_id, payer_id, amount, involved_ids)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := *s
	err := r.db.QueryRowContext(ctx, query, s.GroupID, s.PayerID, s.Amount, pq.Array(encodeInvolved(s.InvolvedIDs))).Scan(
		&created.ID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create split: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a custom split by its id
func (r *Repository) GetByID(ctx context.Context, id int64) (*CustomSplit, error) {
	query := `
		SELECT id, group_id, payer_id, amount, involved_ids, created_at
		FROM custom_splits
		WHERE id = $1
	`

	s := &CustomSplit{}
	var involved []string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.GroupID,
		&s.PayerID,
		&s.Amount,
		pq.Array(&involved),
		&s.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	if s.InvolvedIDs, err = decodeInvolved(involved); err != nil {
		return nil, err
	}

	return s, nil
}

// ListByGroup retrieves all custom splits of a group in creation order
func (r *Repository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*CustomSplit, error) {
	query := `
		SELECT id, group_id, payer_id, amount, involved_ids, created_at
		FROM custom_splits
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []*CustomSplit
	for rows.Next() {
		s := &CustomSplit{}
		var involved []string
		if err := rows.Scan(
			&s.ID,
			&s.GroupID,
			&s.PayerID,
			&s.Amount,
			pq.Array(&involved),
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if s.InvolvedIDs, err = decodeInvolved(involved); err != nil {
			return nil, err
		}
		splits = append(splits, s)
	}

	return splits, rows.Err()
}

// UpdateInvolvedIDs rewrites the involved participants of a split
func (r *Repository) UpdateInvolvedIDs(ctx context.Context, id int64, involvedIDs []calc.ParticipantID) error {
	query := `UPDATE custom_splits SET involved_ids = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, pq.Array(encodeInvolved(involvedIDs))); err != nil {
		return fmt.Errorf("failed to update split participants: %w", err)
	}

	return nil
}

// Delete removes a custom split from the database
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM custom_splits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete split: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSplitNotFound
	}

	return nil
}

func encodeInvolved(ids []calc.ParticipantID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func decodeInvolved(raw []string) ([]calc.ParticipantID, error) {
	out := make([]calc.ParticipantID, len(raw))
	for i, s := range raw {
		id, err := calc.ParseParticipantID(s)
		if err != nil {
			return nil, fmt.Errorf("corrupt involved id in storage: %w", err)
		}
		out[i] = id
	}
	return out, nil
}
