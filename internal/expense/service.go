package expense

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/unkotrip/api/internal/currency"
	"github.com/unkotrip/api/internal/expense/split"
	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/internal/trip"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrNotAuthorized   = errors.New("viewers cannot record expenses")
	ErrNotOwnerOrAdmin = errors.New("only the creator or an admin can delete this expense")
	ErrPayerNotInTrip  = errors.New("payer is not a participant in this trip")
	ErrSplitNotInTrip  = errors.New("split references a participant outside this trip")
	ErrInvalidCurrency = errors.New("unsupported currency")
	ErrDuplicateSplit  = errors.New("split lists a participant more than once")
)

// SettlementInvalidator drops cached settlement results after a write that
// changes balances
type SettlementInvalidator interface {
	Invalidate(ctx context.Context, tripID string) error
}

// Service handles expense business logic
type Service struct {
	repo               *Repository
	tripRepo           *trip.Repository
	participantService *participant.Service
	splitFactory       *split.Factory
	invalidator        SettlementInvalidator
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, tripRepo *trip.Repository, participantService *participant.Service, invalidator SettlementInvalidator) *Service {
	return &Service{
		repo:               repo,
		tripRepo:           tripRepo,
		participantService: participantService,
		splitFactory:       split.NewFactory(),
		invalidator:        invalidator,
	}
}

// Create records an expense on a trip; admins and editors only. The payer
// and every split participant must belong to the trip, and the computed
// shares always sum to the amount.
func (s *Service) Create(ctx context.Context, creatorUserID string, req *CreateExpenseRequest) (*Expense, error) {
	caller, err := s.participantService.RequireMember(ctx, req.TripID, creatorUserID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.CanEdit() {
		return nil, ErrNotAuthorized
	}

	t, err := s.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}

	cur := req.Currency
	if cur == "" {
		cur = t.DefaultCurrency
	}
	if !currency.Valid(cur) {
		return nil, ErrInvalidCurrency
	}

	if err := s.validateParticipants(ctx, creatorUserID, req); err != nil {
		return nil, err
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}
	shares, err := strategy.Calculate(req.Amount, req.Splits)
	if err != nil {
		return nil, err
	}

	expenseDate := time.Now().UTC()
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense, err := s.repo.Create(ctx, creatorUserID, req, cur, expenseDate, shares)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, req.TripID)
	return expense, nil
}

// validateParticipants checks the payer and every split entry against the
// trip's participant list
func (s *Service) validateParticipants(ctx context.Context, callerUserID string, req *CreateExpenseRequest) error {
	participants, err := s.participantService.ListByTrip(ctx, callerUserID, req.TripID)
	if err != nil {
		return err
	}

	members := make(map[string]bool, len(participants))
	for _, p := range participants {
		members[p.ID] = true
	}

	if !members[req.PaidByParticipantID] {
		return ErrPayerNotInTrip
	}

	seen := make(map[string]bool, len(req.Splits))
	for _, in := range req.Splits {
		if !members[in.ParticipantID] {
			return ErrSplitNotInTrip
		}
		if seen[in.ParticipantID] {
			return ErrDuplicateSplit
		}
		seen[in.ParticipantID] = true
	}

	return nil
}

// GetByID retrieves an expense with its shares; the caller must be a trip member
func (s *Service) GetByID(ctx context.Context, callerUserID, id string) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	if _, err := s.participantService.RequireMember(ctx, expense.TripID, callerUserID); err != nil {
		return nil, err
	}

	return expense, nil
}

// ListByTrip retrieves all expenses of a trip; the caller must be a member
func (s *Service) ListByTrip(ctx context.Context, callerUserID, tripID string) ([]*Expense, error) {
	if _, err := s.participantService.RequireMember(ctx, tripID, callerUserID); err != nil {
		return nil, err
	}

	return s.repo.ListByTrip(ctx, tripID)
}

// Delete removes an expense; only its creator or a trip admin may delete
func (s *Service) Delete(ctx context.Context, callerUserID, id string) error {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	caller, err := s.participantService.RequireMember(ctx, expense.TripID, callerUserID)
	if err != nil {
		return err
	}
	if expense.CreatedByID != callerUserID && caller.Role != participant.RoleAdmin {
		return ErrNotOwnerOrAdmin
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, expense.TripID)
	return nil
}

// invalidate drops the cached settlement for a trip. A stale cache heals on
// its own via TTL, so failures only get logged.
func (s *Service) invalidate(ctx context.Context, tripID string) {
	if err := s.invalidator.Invalidate(ctx, tripID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate settlement cache", "trip_id", tripID, "error", err)
	}
}
