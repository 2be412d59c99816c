package settlement

import (
	"context"
	"log/slog"

	"github.com/unkotrip/api/internal/participant"
)

// Service gates settlement computation behind trip membership and layers a
// cache over the pure engine
type Service struct {
	repo               *Repository
	participantService *participant.Service
	cache              Cache
}

// NewService creates a new settlement service with dependencies injected
func NewService(repo *Repository, participantService *participant.Service, cache Cache) *Service {
	return &Service{
		repo:               repo,
		participantService: participantService,
		cache:              cache,
	}
}

// ForTrip computes the settlement of a trip: per-currency balances and a
// suggested transfer plan. The caller must be a member. Results are cached
// per trip until the next expense or payment write.
func (s *Service) ForTrip(ctx context.Context, callerUserID, tripID string) (*Result, error) {
	if _, err := s.participantService.RequireMember(ctx, tripID, callerUserID); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, tripID); ok {
		return cached, nil
	}

	participants, expenses, payments, err := s.repo.Snapshot(ctx, tripID)
	if err != nil {
		return nil, err
	}

	result := Compute(expenses, participants, payments)

	if err := s.cache.Set(ctx, tripID, &result); err != nil {
		slog.WarnContext(ctx, "failed to cache settlement", "trip_id", tripID, "error", err)
	}

	return &result, nil
}
