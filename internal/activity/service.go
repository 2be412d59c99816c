package activity

import (
	"context"
	"errors"

	"github.com/unkotrip/api/internal/participant"
)

// Common errors
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrNotAuthorized    = errors.New("viewers cannot modify the itinerary")
)

// Service handles activity business logic
type Service struct {
	repo               *Repository
	participantService *participant.Service
}

// NewService creates a new activity service with dependencies injected
func NewService(repo *Repository, participantService *participant.Service) *Service {
	return &Service{
		repo:               repo,
		participantService: participantService,
	}
}

// Create adds an activity to a trip; admins and editors only
func (s *Service) Create(ctx context.Context, callerUserID string, req *CreateActivityRequest) (*Activity, error) {
	caller, err := s.participantService.RequireMember(ctx, req.TripID, callerUserID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.CanEdit() {
		return nil, ErrNotAuthorized
	}

	return s.repo.Create(ctx, req)
}

// ListByTrip retrieves all activities of a trip; the caller must be a member
func (s *Service) ListByTrip(ctx context.Context, callerUserID, tripID string) ([]*Activity, error) {
	if _, err := s.participantService.RequireMember(ctx, tripID, callerUserID); err != nil {
		return nil, err
	}

	return s.repo.ListByTrip(ctx, tripID)
}

// Update modifies an activity; admins and editors only
func (s *Service) Update(ctx context.Context, callerUserID, id string, req *UpdateActivityRequest) (*Activity, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrActivityNotFound
	}

	caller, err := s.participantService.RequireMember(ctx, existing.TripID, callerUserID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.CanEdit() {
		return nil, ErrNotAuthorized
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes an activity; admins and editors only
func (s *Service) Delete(ctx context.Context, callerUserID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrActivityNotFound
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
