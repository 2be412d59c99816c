package hotel

import (
	"context"
	"errors"
	"time"

	"github.com/unkotrip/api/internal/currency"
	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/internal/trip"
)

// Common errors
var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrNotAuthorized   = errors.New("viewers cannot modify lodging")
	ErrInvalidDates    = errors.New("check-in date must be before check-out date")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

// Service handles hotel business logic
type Service struct {
	repo               *Repository
	tripRepo           *trip.Repository
	participantService *participant.Service
}

// NewService creates a new hotel service with dependencies injected
func NewService(repo *Repository, tripRepo *trip.Repository, participantService *participant.Service) *Service {
	return &Service{
		repo:               repo,
		tripRepo:           tripRepo,
		participantService: participantService,
	}
}

// nightsBetween counts whole nights between check-in and check-out
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// Create adds a hotel booking to a trip; admins and editors only. Currency
// falls back to the trip's default when omitted.
func (s *Service) Create(ctx context.Context, callerUserID string, req *CreateHotelRequest) (*Hotel, error) {
	caller, err := s.participantService.RequireMember(ctx, req.TripID, callerUserID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.CanEdit() {
		return nil, ErrNotAuthorized
	}

	if !req.CheckInDate.Before(req.CheckOutDate) {
		return nil, ErrInvalidDates
	}

	cur := req.Currency
	if cur == "" {
		t, err := s.tripRepo.GetByID(ctx, req.TripID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, ErrTripNotFound
		}
		cur = t.DefaultCurrency
	}
	if !currency.Valid(cur) {
		return nil, ErrInvalidCurrency
	}

	nights := nightsBetween(req.CheckInDate, req.CheckOutDate)
	return s.repo.Create(ctx, req, nights, cur)
}

// ListByTrip retrieves all hotel bookings of a trip; the caller must be a member
func (s *Service) ListByTrip(ctx context.Context, callerUserID, tripID string) ([]*Hotel, error) {
	if _, err := s.participantService.RequireMember(ctx, tripID, callerUserID); err != nil {
		return nil, err
	}

	return s.repo.ListByTrip(ctx, tripID)
}

// Update modifies a hotel booking; admins and editors only
func (s *Service) Update(ctx context.Context, callerUserID, id string, req *UpdateHotelRequest) (*Hotel, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrHotelNotFound
	}

	caller, err := s.participantService.RequireMember(ctx, existing.TripID, callerUserID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.CanEdit() {
		return nil, ErrNotAuthorized
	}

	if !req.CheckInDate.Before(req.CheckOutDate) {
		return nil, ErrInvalidDates
	}

	cur := req.Currency
	if cur == "" {
		cur = existing.Currency
	}
	if !currency.Valid(cur) {
		return nil, ErrInvalidCurrency
	}

	nights := nightsBetween(req.CheckInDate, req.CheckOutDate)
	return s.repo.Update(ctx, id, req, nights, cur)
}

// Delete removes a hotel booking; admins and editors only
func (s *Service) Delete(ctx context.Context, callerUserID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrHotelNotFound
	}

	caller, err := s.participantService.RequireMember(ctx, existing.TripID, callerUserID)
	if err != nil {
		return err
	}
	if !caller.Role.CanEdit() {
		return ErrNotAuthorized
	}

	return s.repo.Delete(ctx, id)
}
