package trip

import (
	"context"
	"errors"

	"github.com/unkotrip/api/internal/currency"
	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/internal/user"
)

// Common errors
var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrNotMember       = errors.New("you are not a member of this trip")
	ErrNotAdmin        = errors.New("only admins can perform this action")
	ErrInvalidDates    = errors.New("start date must be before end date")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

// Store abstracts trip persistence
type Store interface {
	Create(ctx context.Context, creatorID, creatorName string, req *CreateTripRequest, defaultCurrency string) (*Trip, error)
	GetByID(ctx context.Context, id string) (*Trip, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*Trip, int, error)
	Update(ctx context.Context, id string, req *UpdateTripRequest, defaultCurrency string) (*Trip, error)
	Delete(ctx context.Context, id string) error
}

// ParticipantStore is the slice of participant persistence trips need for
// membership checks
type ParticipantStore interface {
	GetByTripAndUser(ctx context.Context, tripID, userID string) (*participant.Participant, error)
	ListByTrip(ctx context.Context, tripID string) ([]*participant.Participant, error)
}

// UserStore is the slice of user persistence trips need
type UserStore interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// Service handles trip business logic
type Service struct {
	repo            Store
	participantRepo ParticipantStore
	userRepo        UserStore
}

// NewService creates a new trip service with dependencies injected
func NewService(repo Store, participantRepo ParticipantStore, userRepo UserStore) *Service {
	return &Service{
		repo:            repo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
	}
}

// Create creates a trip and adds the creator as a registered ADMIN participant
func (s *Service) Create(ctx context.Context, creatorID string, req *CreateTripRequest) (*Trip, error) {
	if !req.StartDate.Before(req.EndDate) {
		return nil, ErrInvalidDates
	}

	defaultCurrency := req.DefaultCurrency
	if defaultCurrency == "" {
		defaultCurrency = currency.Default
	}
	if !currency.Valid(defaultCurrency) {
		return nil, ErrInvalidCurrency
	}

	creator, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, user.ErrUserNotFound
	}

	name := creator.Name
	if name == "" {
		name = creator.Email
	}

	trip, err := s.repo.Create(ctx, creatorID, name, req, defaultCurrency)
	if err != nil {
		return nil, err
	}

	trip.CreatedByName = creator.Name
	return trip, nil
}

// GetByID retrieves a trip with its participants; the caller must be a member
func (s *Service) GetByID(ctx context.Context, callerUserID, id string) (*Trip, []*participant.Participant, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if trip == nil {
		return nil, nil, ErrTripNotFound
	}

	caller, err := s.participantRepo.GetByTripAndUser(ctx, id, callerUserID)
	if err != nil {
		return nil, nil, err
	}
	if caller == nil {
		return nil, nil, ErrNotMember
	}

	participants, err := s.participantRepo.ListByTrip(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return trip, participants, nil
}

// ListMine retrieves all trips the caller participates in
func (s *Service) ListMine(ctx context.Context, userID string, page, perPage int) ([]*Trip, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByUserID(ctx, userID, perPage, offset)
}

// Update modifies a trip; only admins may edit
func (s *Service) Update(ctx context.Context, callerUserID, id string, req *UpdateTripRequest) (*Trip, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTripNotFound
	}

	caller, err := s.participantRepo.GetByTripAndUser(ctx, id, callerUserID)
	if err != nil {
		return nil, err
	}
	if caller == nil || caller.Role != participant.RoleAdmin {
		return nil, ErrNotAdmin
	}

	if !req.StartDate.Before(req.EndDate) {
		return nil, ErrInvalidDates
	}

	defaultCurrency := req.DefaultCurrency
	if defaultCurrency == "" {
		defaultCurrency = existing.DefaultCurrency
	}
	if !currency.Valid(defaultCurrency) {
		return nil, ErrInvalidCurrency
	}

	return s.repo.Update(ctx, id, req, defaultCurrency)
}

// Delete removes a trip and everything in it; only admins may delete
func (s *Service) Delete(ctx context.Context, callerUserID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTripNotFound
	}

	caller, err := s.participantRepo.GetByTripAndUser(ctx, id, callerUserID)
	if err != nil {
		return err
	}
	if caller == nil || caller.Role != participant.RoleAdmin {
		return ErrNotAdmin
	}

	return s.repo.Delete(ctx, id)
}
