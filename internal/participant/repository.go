package participant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles trip participant data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new participant repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new participant into a trip. userID is nil for ghost
// participants.
func (r *Repository) Create(ctx context.Context, tripID string, userID *string, name string, ptype Type, role Role) (*Participant, error) {
	query := `
		INSERT INTO trip_participants (id, trip_id, user_id, name, type, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, trip_id, user_id, name, type, role, created_at
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), tripID, userID, name, ptype, role).Scan(
		&p.ID,
		&p.TripID,
		&p.UserID,
		&p.Name,
		&p.Type,
		&p.Role,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return p, nil
}

// GetByID retrieves a participant by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Participant, error) {
	query := `
		SELECT p.id, p.trip_id, p.user_id, p.name, p.type, p.role, p.created_at, u.email
		FROM trip_participants p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.TripID,
		&p.UserID,
		&p.Name,
		&p.Type,
		&p.Role,
		&p.CreatedAt,
		&p.Email,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// GetByTripAndUser retrieves the participant entry of a user within a trip,
// or nil when the user is not a member
func (r *Repository) GetByTripAndUser(ctx context.Context, tripID, userID string) (*Participant, error) {
	query := `
		SELECT p.id, p.trip_id, p.user_id, p.name, p.type, p.role, p.created_at, u.email
		FROM trip_participants p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.trip_id = $1 AND p.user_id = $2
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, tripID, userID).Scan(
		&p.ID,
		&p.TripID,
		&p.UserID,
		&p.Name,
		&p.Type,
		&p.Role,
		&p.CreatedAt,
		&p.Email,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant by trip and user: %w", err)
	}

	return p, nil
}

// ListByTrip retrieves all participants of a trip in creation order
func (r *Repository) ListByTrip(ctx context.Context, tripID string) ([]*Participant, error) {
	query := `
		SELECT p.id, p.trip_id, p.user_id, p.name, p.type, p.role, p.created_at, u.email
		FROM trip_participants p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.trip_id = $1
		ORDER BY p.created_at, p.id
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p := &Participant{}
		if err := rows.Scan(
			&p.ID,
			&p.TripID,
			&p.UserID,
			&p.Name,
			&p.Type,
			&p.Role,
			&p.CreatedAt,
			&p.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, nil
}

// UpdateRole changes a participant's role
func (r *Repository) UpdateRole(ctx context.Context, id string, role Role) (*Participant, error) {
	query := `
		UPDATE trip_participants
		SET role = $2
		WHERE id = $1
		RETURNING id, trip_id, user_id, name, type, role, created_at
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id, role).Scan(
		&p.ID,
		&p.TripID,
		&p.UserID,
		&p.Name,
		&p.Type,
		&p.Role,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update participant role: %w", err)
	}

	return p, nil
}

// CountAdmins returns how many admins a trip has
func (r *Repository) CountAdmins(ctx context.Context, tripID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM trip_participants WHERE trip_id = $1 AND role = $2`
	if err := r.db.QueryRowContext(ctx, query, tripID, RoleAdmin).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// Delete removes a participant from its trip
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trip_participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("participant not found")
	}

	return nil
}
