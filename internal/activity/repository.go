package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles activity data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new activity repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new activity into the database
func (r *Repository) Create(ctx context.Context, req *CreateActivityRequest) (*Activity, error) {
	query := `
		INSERT INTO activities (id, trip_id, title, description, location, notes, activity_date, activity_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, trip_id, title, description, location, notes, activity_date, activity_time, created_at
	`

	activity := &Activity{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		req.TripID,
		req.Title,
		req.Description,
		req.Location,
		req.Notes,
		req.Date,
		req.Time,
	).Scan(
		&activity.ID,
		&activity.TripID,
		&activity.Title,
		&activity.Description,
		&activity.Location,
		&activity.Notes,
		&activity.Date,
		&activity.Time,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return activity, nil
}

// GetByID retrieves an activity by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Activity, error) {
	query := `
		SELECT id, trip_id, title, description, location, notes, activity_date, activity_time, created_at
		FROM activities
		WHERE id = $1
	`

	activity := &Activity{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&activity.ID,
		&activity.TripID,
		&activity.Title,
		&activity.Description,
		&activity.Location,
		&activity.Notes,
		&activity.Date,
		&activity.Time,
		&activity.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return activity, nil
}

// ListByTrip retrieves all activities of a trip, earliest first with undated
// activities last
func (r *Repository) ListByTrip(ctx context.Context, tripID string) ([]*Activity, error) {
	query := `
		SELECT id, trip_id, title, description, location, notes, activity_date, activity_time, created_at
		FROM activities
		WHERE trip_id = $1
		ORDER BY activity_date ASC NULLS LAST, activity_time ASC NULLS LAST, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*Activity
	for rows.Next() {
		activity := &Activity{}
		if err := rows.Scan(
			&activity.ID,
			&activity.TripID,
			&activity.Title,
			&activity.Description,
			&activity.Location,
			&activity.Notes,
			&activity.Date,
			&activity.Time,
			&activity.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

// Update modifies an existing activity
func (r *Repository) Update(ctx context.Context, id string, req *UpdateActivityRequest) (*Activity, error) {
	query := `
		UPDATE activities
		SET title = $2, description = $3, location = $4, notes = $5, activity_date = $6, activity_time = $7
		WHERE id = $1
		RETURNING id, trip_id, title, description, location, notes, activity_date, activity_time, created_at
	`

	activity := &Activity{}
	err := r.db.QueryRowContext(ctx, query,
		id,
		req.Title,
		req.Description,
		req.Location,
		req.Notes,
		req.Date,
		req.Time,
	).Scan(
		&activity.ID,
		&activity.TripID,
		&activity.Title,
		&activity.Description,
		&activity.Location,
		&activity.Notes,
		&activity.Date,
		&activity.Time,
		&activity.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return activity, nil
}

// Delete removes an activity from the database
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("activity not found")
	}

	return nil
}
