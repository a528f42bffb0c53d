package service

import (
	"context"
	"sort"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

// FindOverlapping lists the teaching slots on weekday that touch or
// intersect [from, to], ordered by start time.
func (s *Service) FindOverlapping(ctx context.Context, weekday model.Weekday, from, to model.TimeOfDay) ([]model.TeachingSlot, error) {
	if from > to {
		return nil, errs.NewValidationError("to", "window end is before its start")
	}
	slots, err := s.repo.ListSlotsByWeekday(ctx, weekday)
	if err != nil {
		return nil, err
	}
	res := make([]model.TeachingSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Overlaps(from, to) {
			res = append(res, slot)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].StartTime != res[j].StartTime {
			return res[i].StartTime < res[j].StartTime
		}
		return res[i].ID.String() < res[j].ID.String()
	})
	return res, nil
}
