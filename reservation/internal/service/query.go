package service

import (
	"context"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

func (s *Service) scopeFilter(actor model.Actor, scope model.Scope) (model.ListFilter, error) {
	f := model.ListFilter{Now: s.clock()}
	switch scope {
	case model.ScopeOwn, "":
		f.RequesterID = &actor.ID
	case model.ScopeAll:
		if !actor.IsAdmin() {
			return model.ListFilter{}, errs.ErrForbidden
		}
	default:
		return model.ListFilter{}, errs.NewValidationError("scope", "must be own or all")
	}
	return f, nil
}

// ListFor lists reservations newest first. Scope all is admin only. The
// status filter matches the observed status, so completed includes
// approved reservations whose window has passed.
func (s *Service) ListFor(ctx context.Context, actor model.Actor, scope model.Scope, status *model.Status, limit uint64) (model.ListReservations, error) {
	f, err := s.scopeFilter(actor, scope)
	if err != nil {
		return model.ListReservations{}, err
	}
	if status != nil {
		if !status.Valid() {
			return model.ListReservations{}, errs.NewValidationError("status", "unknown status")
		}
		f.Status = status
	}
	f.Limit = limit

	items, err := s.repo.ListReservations(ctx, f)
	if err != nil {
		return model.ListReservations{}, err
	}
	for i := range items {
		items[i] = s.observe(items[i], f.Now)
	}
	if items == nil {
		items = []model.Reservation{}
	}
	return model.ListReservations{
		TotalElements: len(items),
		Items:         items,
	}, nil
}

func (s *Service) Summary(ctx context.Context, actor model.Actor, scope model.Scope) (model.Summary, error) {
	f, err := s.scopeFilter(actor, scope)
	if err != nil {
		return model.Summary{}, err
	}
	return s.repo.SummaryReservations(ctx, f)
}
