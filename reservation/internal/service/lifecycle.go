package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

// Submit records a new pending reservation. Resource availability is not
// rechecked and overlapping reservations for the same resource are accepted.
func (s *Service) Submit(ctx context.Context, actor model.Actor, req model.SubmitRequest) (model.Reservation, error) {
	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		return model.Reservation{}, errs.NewValidationError("purpose", "must not be empty")
	}
	if !req.EndAt.After(req.StartAt) {
		return model.Reservation{}, errs.NewValidationError("endAt", "must be after startAt")
	}
	if !req.Kind.Valid() {
		return model.Reservation{}, &errs.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown kind %q", req.Kind), Err: errs.ErrUnknownResource}
	}
	if err := s.resourceExists(ctx, req.Kind, req.ResourceID); err != nil {
		return model.Reservation{}, err
	}

	now := s.clock()
	res, err := s.repo.CreateReservation(ctx, model.Reservation{
		ID:          uuid.New(),
		RequesterID: actor.ID,
		Kind:        req.Kind,
		ResourceID:  req.ResourceID,
		Purpose:     purpose,
		StartAt:     req.StartAt.UTC(),
		EndAt:       req.EndAt.UTC(),
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.log.Info("reservation submitted",
		zap.Stringer("id", res.ID),
		zap.Stringer("requester", actor.ID),
		zap.String("kind", string(res.Kind)))
	return s.observe(res, now), nil
}

// Cancel withdraws a pending reservation on behalf of its requester.
func (s *Service) Cancel(ctx context.Context, actor model.Actor, id uuid.UUID) (model.Reservation, error) {
	now := s.clock()
	res, err := s.repo.TransitionReservation(ctx, model.Transition{
		ID:          id,
		From:        model.StatusPending,
		To:          model.StatusCancelled,
		RequesterID: &actor.ID,
		At:          now,
	})
	if err != nil {
		if !errors.Is(err, errs.ErrInvalidTransition) {
			return model.Reservation{}, err
		}
		return model.Reservation{}, s.classifyMiss(ctx, id, &actor.ID)
	}
	return s.observe(res, now), nil
}

// Decide moves a pending reservation to approved or rejected. Rejection
// needs a non-blank annotation.
func (s *Service) Decide(ctx context.Context, actor model.Actor, id uuid.UUID, outcome model.Status, annotation *string) (model.Reservation, error) {
	if outcome != model.StatusApproved && outcome != model.StatusRejected {
		return model.Reservation{}, errs.NewValidationError("outcome", fmt.Sprintf("must be approved or rejected, got %q", outcome))
	}
	if annotation != nil {
		trimmed := strings.TrimSpace(*annotation)
		annotation = &trimmed
		if trimmed == "" {
			annotation = nil
		}
	}
	if outcome == model.StatusRejected && annotation == nil {
		return model.Reservation{}, &errs.ValidationError{Field: "annotation", Message: errs.ErrMissingAnnotation.Error(), Err: errs.ErrMissingAnnotation}
	}
	if !actor.IsAdmin() {
		return model.Reservation{}, s.forbidOrStale(ctx, id)
	}

	now := s.clock()
	res, err := s.repo.TransitionReservation(ctx, model.Transition{
		ID:         id,
		From:       model.StatusPending,
		To:         outcome,
		Annotation: annotation,
		At:         now,
	})
	if err != nil {
		if !errors.Is(err, errs.ErrInvalidTransition) {
			return model.Reservation{}, err
		}
		return model.Reservation{}, s.classifyMiss(ctx, id, nil)
	}
	s.log.Info("reservation decided",
		zap.Stringer("id", res.ID),
		zap.Stringer("admin", actor.ID),
		zap.String("outcome", string(outcome)))
	return s.observe(res, now), nil
}

// classifyMiss explains why a conditional update matched no row. A settled
// reservation reports InvalidTransition whoever the caller is.
func (s *Service) classifyMiss(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error {
	cur, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return err
	}
	if cur.Status != model.StatusPending {
		return errors.Wrapf(errs.ErrInvalidTransition, "reservation is %s", model.ObservedStatus(cur, s.clock()))
	}
	if owner != nil && cur.RequesterID != *owner {
		return errs.ErrNotOwner
	}
	// lost a race between the update and this read
	return errs.ErrInvalidTransition
}

func (s *Service) forbidOrStale(ctx context.Context, id uuid.UUID) error {
	cur, err := s.repo.GetReservation(ctx, id)
	if err == nil && cur.Status != model.StatusPending {
		return errors.Wrapf(errs.ErrInvalidTransition, "reservation is %s", model.ObservedStatus(cur, s.clock()))
	}
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	return errs.ErrForbidden
}

// Get returns one reservation to its requester or to an admin.
func (s *Service) Get(ctx context.Context, actor model.Actor, id uuid.UUID) (model.Reservation, error) {
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	if !actor.IsAdmin() && res.RequesterID != actor.ID {
		return model.Reservation{}, errs.ErrForbidden
	}
	return s.observe(res, s.clock()), nil
}

func (s *Service) observe(r model.Reservation, now time.Time) model.Reservation {
	r.EffectiveStatus = model.ObservedStatus(r, now)
	return r
}
