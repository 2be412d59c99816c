package payment

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/unkotrip/api/internal/currency"
	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/internal/trip"
)

// Common errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrNotInvolved     = errors.New("only the payer, the recipient or an admin can do this")
	ErrSelfPayment     = errors.New("payer and recipient must be different participants")
	ErrPartyNotInTrip  = errors.New("payment references a participant outside this trip")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

// SettlementInvalidator drops cached settlement results after a write that
// changes balances
type SettlementInvalidator interface {
	Invalidate(ctx context.Context, tripID string) error
}

// Service handles payment business logic
type Service struct {
	repo               *Repository
	tripRepo           *trip.Repository
	participantService *participant.Service
	invalidator        SettlementInvalidator
}

// NewService creates a new payment service with dependencies injected
func NewService(repo *Repository, tripRepo *trip.Repository, participantService *participant.Service, invalidator SettlementInvalidator) *Service {
	return &Service{
		repo:               repo,
		tripRepo:           tripRepo,
		participantService: participantService,
		invalidator:        invalidator,
	}
}

// Create records a payment between two participants. The caller must be one
// of the two parties or a trip admin. Amounts are stored rounded to cents.
func (s *Service) Create(ctx context.Context, callerUserID string, req *CreatePaymentRequest) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.FromParticipantID == req.ToParticipantID {
		return nil, ErrSelfPayment
	}

	caller, err := s.participantService.RequireMember(ctx, req.TripID, callerUserID)
	if err != nil {
		return nil, err
	}

	isParty := caller.ID == req.FromParticipantID || caller.ID == req.ToParticipantID
	if !isParty && caller.Role != participant.RoleAdmin {
		return nil, ErrNotInvolved
	}

	participants, err := s.participantService.ListByTrip(ctx, callerUserID, req.TripID)
	if err != nil {
		return nil, err
	}
	members := make(map[string]bool, len(participants))
	for _, p := range participants {
		members[p.ID] = true
	}
	if !members[req.FromParticipantID] || !members[req.ToParticipantID] {
		return nil, ErrPartyNotInTrip
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

	amount := math.Round(req.Amount*100) / 100
	payment, err := s.repo.Create(ctx, req, amount, cur)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, req.TripID)
	return payment, nil
}

// ListByTrip retrieves all payments of a trip; the caller must be a member
func (s *Service) ListByTrip(ctx context.Context, callerUserID, tripID string) ([]*Payment, error) {
	if _, err := s.participantService.RequireMember(ctx, tripID, callerUserID); err != nil {
		return nil, err
	}

	return s.repo.ListByTrip(ctx, tripID)
}

// Delete undoes a payment. The caller must be one of the two parties or a
// trip admin.
func (s *Service) Delete(ctx context.Context, callerUserID, id string) error {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	caller, err := s.participantService.RequireMember(ctx, payment.TripID, callerUserID)
	if err != nil {
		return err
	}

	isParty := caller.ID == payment.FromParticipantID || caller.ID == payment.ToParticipantID
	if !isParty && caller.Role != participant.RoleAdmin {
		return ErrNotInvolved
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, payment.TripID)
	return nil
}

// invalidate drops the cached settlement for a trip. A stale cache heals on
// its own via TTL, so failures only get logged.
func (s *Service) invalidate(ctx context.Context, tripID string) {
	if err := s.invalidator.Invalidate(ctx, tripID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate settlement cache", "trip_id", tripID, "error", err)
	}
}
