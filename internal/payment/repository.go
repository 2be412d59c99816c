package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment into the database
func (r *Repository) Create(ctx context.Context, req *CreatePaymentRequest, amount float64, currency string) (*Payment, error) {
	query := `
		INSERT INTO payments (id, trip_id, from_participant_id, to_participant_id, amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, trip_id, from_participant_id, to_participant_id, amount, currency, created_at
	`

	payment := &Payment{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		req.TripID,
		req.FromParticipantID,
		req.ToParticipantID,
		amount,
		currency,
	).Scan(
		&payment.ID,
		&payment.TripID,
		&payment.FromParticipantID,
		&payment.ToParticipantID,
		&payment.Amount,
		&payment.Currency,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// GetByID retrieves a payment by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Payment, error) {
	query := `
		SELECT p.id, p.trip_id, p.from_participant_id, p.to_participant_id, p.amount, p.currency, p.created_at,
		       pf.name, pt.name
		FROM payments p
		JOIN trip_participants pf ON p.from_participant_id = pf.id
		JOIN trip_participants pt ON p.to_participant_id = pt.id
		WHERE p.id = $1
	`

	payment := &Payment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&payment.ID,
		&payment.TripID,
		&payment.FromParticipantID,
		&payment.ToParticipantID,
		&payment.Amount,
		&payment.Currency,
		&payment.CreatedAt,
		&payment.FromName,
		&payment.ToName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}

// ListByTrip retrieves all payments of a trip, newest first
func (r *Repository) ListByTrip(ctx context.Context, tripID string) ([]*Payment, error) {
	query := `
		SELECT p.id, p.trip_id, p.from_participant_id, p.to_participant_id, p.amount, p.currency, p.created_at,
		       pf.name, pt.name
		FROM payments p
		JOIN trip_participants pf ON p.from_participant_id = pf.id
		JOIN trip_participants pt ON p.to_participant_id = pt.id
		WHERE p.trip_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		payment := &Payment{}
		if err := rows.Scan(
			&payment.ID,
			&payment.TripID,
			&payment.FromParticipantID,
			&payment.ToParticipantID,
			&payment.Amount,
			&payment.Currency,
			&payment.CreatedAt,
			&payment.FromName,
			&payment.ToName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// Delete removes a payment from the database
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("payment not found")
	}

	return nil
}
