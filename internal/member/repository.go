package member

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new member repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new member into the database
func (r *Repository) Create(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (group_id, name, days_absent, expense_input, fixed_expense_input)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	created := *m
	err := r.db.QueryRowContext(ctx, query, m.GroupID, m.Name, m.DaysAbsent, m.ExpenseInput, m.FixedExpenseInput).Scan(
		&created.ID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a member by their id
func (r *Repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	query := `
		SELECT id, group_id, name, days_absent, expense_input, fixed_expense_input, created_at
		FROM members
		WHERE id = $1
	`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.GroupID,
		&m.Name,
		&m.DaysAbsent,
		&m.ExpenseInput,
		&m.FixedExpenseInput,
		&m.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

// ListByGroup retrieves all members of a group in creation order
func (r *Repository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Member, error) {
	query := `
		SELECT id, group_id, name, days_absent, expense_input, fixed_expense_input, created_at
		FROM members
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(
			&m.ID,
			&m.GroupID,
			&m.Name,
			&m.DaysAbsent,
			&m.ExpenseInput,
			&m.FixedExpenseInput,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// Exists reports whether a member belongs to the given group
func (r *Repository) Exists(ctx context.Context, groupID uuid.UUID, memberID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1 AND group_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, memberID, groupID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check member: %w", err)
	}
	return exists, nil
}

// Update modifies an existing member
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateMemberRequest) (*Member, error) {
	query := `
		UPDATE members
		SET name = COALESCE($2, name),
		    days_absent = COALESCE($3, days_absent),
		    expense_input = COALESCE($4, expense_input),
		    fixed_expense_input = COALESCE($5, fixed_expense_input)
		WHERE id = $1
		RETURNING id, group_id, name, days_absent, expense_input, fixed_expense_input, created_at
	`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.DaysAbsent, req.ExpenseInput, req.FixedExpenseInput).Scan(
		&m.ID,
		&m.GroupID,
		&m.Name,
		&m.DaysAbsent,
		&m.ExpenseInput,
		&m.FixedExpenseInput,
		&m.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return m, nil
}

// Delete removes a member from the database
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
