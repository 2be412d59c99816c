package settlement

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository loads the settlement input for a trip. Everything is read in a
// single read-only transaction so balances are derived from one consistent
// snapshot even while expenses or payments are being written concurrently.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Snapshot loads all participants, expenses with shares, and payments of a
// trip. Expenses come back in creation order, which fixes the currency
// ordering of the computed result.
func (r *Repository) Snapshot(ctx context.Context, tripID string) ([]Participant, []Expense, []Payment, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	participants, err := loadParticipants(ctx, tx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}

	expenses, err := loadExpenses(ctx, tx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}

	payments, err := loadPayments(ctx, tx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return participants, expenses, payments, nil
}

func loadParticipants(ctx context.Context, tx *sql.Tx, tripID string) ([]Participant, error) {
	query := `
		SELECT id, name
		FROM trip_participants
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := tx.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, nil
}

func loadExpenses(ctx context.Context, tx *sql.Tx, tripID string) ([]Expense, error) {
	query := `
		SELECT id, amount, currency, paid_by_participant_id
		FROM expenses
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := tx.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	defer rows.Close()

	var expenses []Expense
	index := make(map[string]int)
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Currency, &e.PaidByParticipantID); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		index[e.ID] = len(expenses)
		expenses = append(expenses, e)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	shareQuery := `
		SELECT s.expense_id, s.participant_id, s.amount
		FROM expense_shares s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.trip_id = $1
		ORDER BY s.expense_id, s.id
	`

	shareRows, err := tx.QueryContext(ctx, shareQuery, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var expenseID string
		var share ExpenseShare
		if err := shareRows.Scan(&expenseID, &share.ParticipantID, &share.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		if i, ok := index[expenseID]; ok {
			expenses[i].Shares = append(expenses[i].Shares, share)
		}
	}

	return expenses, nil
}

func loadPayments(ctx context.Context, tx *sql.Tx, tripID string) ([]Payment, error) {
	query := `
		SELECT id, from_participant_id, to_participant_id, amount, currency
		FROM payments
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := tx.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.FromParticipantID, &p.ToParticipantID, &p.Amount, &p.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}
