package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unkotrip/api/internal/expense/split"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an expense and its shares in one transaction
func (r *Repository) Create(ctx context.Context, creatorID string, req *CreateExpenseRequest, currency string, expenseDate time.Time, shares []split.Output) (*Expense, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	expenseQuery := `
		INSERT INTO expenses (id, trip_id, created_by_id, paid_by_participant_id, description, amount, currency, expense_date, split_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, trip_id, created_by_id, paid_by_participant_id, description, amount, currency, expense_date, split_type, created_at
	`

	expense := &Expense{}
	err = tx.QueryRowContext(ctx, expenseQuery,
		uuid.NewString(),
		req.TripID,
		creatorID,
		req.PaidByParticipantID,
		req.Description,
		req.Amount,
		currency,
		expenseDate,
		req.SplitType,
	).Scan(
		&expense.ID,
		&expense.TripID,
		&expense.CreatedByID,
		&expense.PaidByParticipantID,
		&expense.Description,
		&expense.Amount,
		&expense.Currency,
		&expense.ExpenseDate,
		&expense.SplitType,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	shareQuery := `
		INSERT INTO expense_shares (id, expense_id, participant_id, amount)
		VALUES ($1, $2, $3, $4)
	`
	for _, s := range shares {
		if _, err := tx.ExecContext(ctx, shareQuery, uuid.NewString(), expense.ID, s.ParticipantID, s.Amount); err != nil {
			return nil, fmt.Errorf("failed to create expense share: %w", err)
		}
		expense.Shares = append(expense.Shares, &Share{
			ExpenseID:     expense.ID,
			ParticipantID: s.ParticipantID,
			Amount:        s.Amount,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	return expense, nil
}

// GetByID retrieves an expense with its shares
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.created_by_id, e.paid_by_participant_id, e.description,
		       e.amount, e.currency, e.expense_date, e.split_type, e.created_at, p.name
		FROM expenses e
		JOIN trip_participants p ON e.paid_by_participant_id = p.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.TripID,
		&expense.CreatedByID,
		&expense.PaidByParticipantID,
		&expense.Description,
		&expense.Amount,
		&expense.Currency,
		&expense.ExpenseDate,
		&expense.SplitType,
		&expense.CreatedAt,
		&expense.PaidByName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	shares, err := r.listShares(ctx, id)
	if err != nil {
		return nil, err
	}
	expense.Shares = shares

	return expense, nil
}

func (r *Repository) listShares(ctx context.Context, expenseID string) ([]*Share, error) {
	query := `
		SELECT s.id, s.expense_id, s.participant_id, s.amount, p.name
		FROM expense_shares s
		JOIN trip_participants p ON s.participant_id = p.id
		WHERE s.expense_id = $1
		ORDER BY p.created_at ASC, p.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense shares: %w", err)
	}
	defer rows.Close()

	var shares []*Share
	for rows.Next() {
		share := &Share{}
		if err := rows.Scan(&share.ID, &share.ExpenseID, &share.ParticipantID, &share.Amount, &share.ParticipantName); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		shares = append(shares, share)
	}

	return shares, nil
}

// ListByTrip retrieves all expenses of a trip with their shares, newest first
func (r *Repository) ListByTrip(ctx context.Context, tripID string) ([]*Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.created_by_id, e.paid_by_participant_id, e.description,
		       e.amount, e.currency, e.expense_date, e.split_type, e.created_at, p.name
		FROM expenses e
		JOIN trip_participants p ON e.paid_by_participant_id = p.id
		WHERE e.trip_id = $1
		ORDER BY e.expense_date DESC, e.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.TripID,
			&expense.CreatedByID,
			&expense.PaidByParticipantID,
			&expense.Description,
			&expense.Amount,
			&expense.Currency,
			&expense.ExpenseDate,
			&expense.SplitType,
			&expense.CreatedAt,
			&expense.PaidByName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	for _, expense := range expenses {
		shares, err := r.listShares(ctx, expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Shares = shares
	}

	return expenses, nil
}

// Delete removes an expense; its shares go with it via ON DELETE CASCADE
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("expense not found")
	}

	return nil
}
