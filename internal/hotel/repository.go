package hotel

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles hotel data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new hotel repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new hotel booking into the database
func (r *Repository) Create(ctx context.Context, req *CreateHotelRequest, nights int, currency string) (*Hotel, error) {
	query := `
		INSERT INTO hotels (id, trip_id, name, link, check_in_date, check_out_date, price_per_night, total_price, number_of_nights, currency, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, trip_id, name, link, check_in_date, check_out_date, price_per_night, total_price, number_of_nights, currency, notes, created_at
	`

	hotel := &Hotel{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		req.TripID,
		req.Name,
		req.Link,
		req.CheckInDate,
		req.CheckOutDate,
		req.PricePerNight,
		req.TotalPrice,
		nights,
		currency,
		req.Notes,
	).Scan(
		&hotel.ID,
		&hotel.TripID,
		&hotel.Name,
		&hotel.Link,
		&hotel.CheckInDate,
		&hotel.CheckOutDate,
		&hotel.PricePerNight,
		&hotel.TotalPrice,
		&hotel.NumberOfNights,
		&hotel.Currency,
		&hotel.Notes,
		&hotel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}

	return hotel, nil
}

// GetByID retrieves a hotel booking by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Hotel, error) {
	query := `
		SELECT id, trip_id, name, link, check_in_date, check_out_date, price_per_night, total_price, number_of_nights, currency, notes, created_at
		FROM hotels
		WHERE id = $1
	`

	hotel := &Hotel{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.TripID,
		&hotel.Name,
		&hotel.Link,
		&hotel.CheckInDate,
		&hotel.CheckOutDate,
		&hotel.PricePerNight,
		&hotel.TotalPrice,
		&hotel.NumberOfNights,
		&hotel.Currency,
		&hotel.Notes,
		&hotel.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}

	return hotel, nil
}

// ListByTrip retrieves all hotel bookings of a trip ordered by check-in date
func (r *Repository) ListByTrip(ctx context.Context, tripID string) ([]*Hotel, error) {
	query := `
		SELECT id, trip_id, name, link, check_in_date, check_out_date, price_per_night, total_price, number_of_nights, currency, notes, created_at
		FROM hotels
		WHERE trip_id = $1
		ORDER BY check_in_date ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	for rows.Next() {
		hotel := &Hotel{}
		if err := rows.Scan(
			&hotel.ID,
			&hotel.TripID,
			&hotel.Name,
			&hotel.Link,
			&hotel.CheckInDate,
			&hotel.CheckOutDate,
			&hotel.PricePerNight,
			&hotel.TotalPrice,
			&hotel.NumberOfNights,
			&hotel.Currency,
			&hotel.Notes,
			&hotel.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, nil
}

// Update modifies an existing hotel booking
func (r *Repository) Update(ctx context.Context, id string, req *UpdateHotelRequest, nights int, currency string) (*Hotel, error) {
	query := `
		UPDATE hotels
		SET name = $2, link = $3, check_in_date = $4, check_out_date = $5, price_per_night = $6, total_price = $7, number_of_nights = $8, currency = $9, notes = $10
		WHERE id = $1
		RETURNING id, trip_id, name, link, check_in_date, check_out_date, price_per_night, total_price, number_of_nights, currency, notes, created_at
	`

	hotel := &Hotel{}
	err := r.db.QueryRowContext(ctx, query,
		id,
		req.Name,
		req.Link,
		req.CheckInDate,
		req.CheckOutDate,
		req.PricePerNight,
		req.TotalPrice,
		nights,
		currency,
		req.Notes,
	).Scan(
		&hotel.ID,
		&hotel.TripID,
		&hotel.Name,
		&hotel.Link,
		&hotel.CheckInDate,
		&hotel.CheckOutDate,
		&hotel.PricePerNight,
		&hotel.TotalPrice,
		&hotel.NumberOfNights,
		&hotel.Currency,
		&hotel.Notes,
		&hotel.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}

	return hotel, nil
}

// Delete removes a hotel booking from the database
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("hotel not found")
	}

	return nil
}
