package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

// AdminDecide resolves the caller's role from the profile store rather than
// trusting the token, decides, then announces the decision. A failed
// announcement is logged and does not undo the decision.
func (s *Service) AdminDecide(ctx context.Context, actorID, id uuid.UUID, outcome model.Status, annotation *string) (model.Reservation, error) {
	profile, err := s.repo.GetProfile(ctx, actorID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Reservation{}, errs.ErrForbidden
		}
		return model.Reservation{}, err
	}
	actor := model.Actor{ID: actorID, Role: profile.Role}
	if !actor.IsAdmin() {
		return model.Reservation{}, errs.ErrForbidden
	}

	res, err := s.Decide(ctx, actor, id, outcome, annotation)
	if err != nil {
		return model.Reservation{}, err
	}

	ev := model.DecisionEvent{
		ReservationID: res.ID,
		RequesterID:   res.RequesterID,
		ActorID:       actorID,
		Outcome:       res.Status,
		Annotation:    res.AdminAnnotation,
		DecidedAt:     res.UpdatedAt,
	}
	if err := s.publisher.PublishDecision(ctx, ev); err != nil {
		s.log.Error("publish decision",
			zap.Stringer("reservation", res.ID),
			zap.String("kind", errs.Kind(err)),
			zap.Error(err))
	}
	return res, nil
}
