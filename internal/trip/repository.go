package trip

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/unkotrip/api/internal/participant"
)

// Repository handles trip data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new trip repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a trip and its creator's ADMIN participant row in one
// transaction, so a trip can never exist without at least one member
func (r *Repository) Create(ctx context.Context, creatorID, creatorName string, req *CreateTripRequest, defaultCurrency string) (*Trip, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO trips (id, name, description, destination, start_date, end_date, default_currency, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, description, destination, start_date, end_date, default_currency, created_by_id, created_at
	`

	trip := &Trip{}
	err = tx.QueryRowContext(ctx, query,
		uuid.NewString(),
		req.Name,
		req.Description,
		req.Destination,
		req.StartDate,
		req.EndDate,
		defaultCurrency,
		creatorID,
	).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Description,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.DefaultCurrency,
		&trip.CreatedByID,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	creatorQuery := `
		INSERT INTO trip_participants (id, trip_id, user_id, name, type, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.ExecContext(ctx, creatorQuery,
		uuid.NewString(),
		trip.ID,
		creatorID,
		creatorName,
		participant.TypeRegistered,
		participant.RoleAdmin,
	); err != nil {
		return nil, fmt.Errorf("failed to add trip creator: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trip: %w", err)
	}

	return trip, nil
}

// GetByID retrieves a trip by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Trip, error) {
	query := `
		SELECT t.id, t.name, t.description, t.destination, t.start_date, t.end_date,
		       t.default_currency, t.created_by_id, t.created_at, u.name
		FROM trips t
		JOIN users u ON t.created_by_id = u.id
		WHERE t.id = $1
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Description,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.DefaultCurrency,
		&trip.CreatedByID,
		&trip.CreatedAt,
		&trip.CreatedByName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// ListByUserID retrieves all trips the user participates in, newest first
func (r *Repository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*Trip, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM trips t
		JOIN trip_participants p ON p.trip_id = t.id
		WHERE p.user_id = $1
	`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	query := `
		SELECT t.id, t.name, t.description, t.destination, t.start_date, t.end_date,
		       t.default_currency, t.created_by_id, t.created_at, u.name
		FROM trips t
		JOIN trip_participants p ON p.trip_id = t.id
		JOIN users u ON t.created_by_id = u.id
		WHERE p.user_id = $1
		ORDER BY t.start_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		trip := &Trip{}
		if err := rows.Scan(
			&trip.ID,
			&trip.Name,
			&trip.Description,
			&trip.Destination,
			&trip.StartDate,
			&trip.EndDate,
			&trip.DefaultCurrency,
			&trip.CreatedByID,
			&trip.CreatedAt,
			&trip.CreatedByName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	return trips, total, nil
}

// Update modifies an existing trip
func (r *Repository) Update(ctx context.Context, id string, req *UpdateTripRequest, defaultCurrency string) (*Trip, error) {
	query := `
		UPDATE trips
		SET name = $2, description = $3, destination = $4, start_date = $5, end_date = $6, default_currency = $7
		WHERE id = $1
		RETURNING id, name, description, destination, start_date, end_date, default_currency, created_by_id, created_at
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query,
		id,
		req.Name,
		req.Description,
		req.Destination,
		req.StartDate,
		req.EndDate,
		defaultCurrency,
	).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Description,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.DefaultCurrency,
		&trip.CreatedByID,
		&trip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// Delete removes a trip; participants, activities, hotels, expenses and
// payments go with it via ON DELETE CASCADE
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("trip not found")
	}

	return nil
}
