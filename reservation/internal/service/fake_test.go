package service_test

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
	"github.com/sarpras/reservation-service/reservation/internal/repository"
)

// memRepo mirrors the conditional-update semantics of the postgres repository.
type memRepo struct {
	mu            sync.Mutex
	reservations  map[uuid.UUID]model.Reservation
	resources     []model.Resource
	slots         []model.TeachingSlot
	profiles      map[uuid.UUID]model.Profile
	notifications []model.Notification
	failWith      error
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		reservations: map[uuid.UUID]model.Reservation{},
		profiles:     map[uuid.UUID]model.Profile{},
	}
}

func (m *memRepo) CreateReservation(_ context.Context, r model.Reservation) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return model.Reservation{}, m.failWith
	}
	m.reservations[r.ID] = r
	return r, nil
}

func (m *memRepo) GetReservation(_ context.Context, id uuid.UUID) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[id]
	if !ok {
		return model.Reservation{}, errs.ErrNotFound
	}
	return r, nil
}

func (m *memRepo) TransitionReservation(_ context.Context, tr model.Transition) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[tr.ID]
	if !ok || r.Status != tr.From || (tr.RequesterID != nil && r.RequesterID != *tr.RequesterID) {
		return model.Reservation{}, errs.ErrInvalidTransition
	}
	r.Status = tr.To
	if tr.Annotation != nil {
		r.AdminAnnotation = tr.Annotation
	}
	r.UpdatedAt = tr.At
	m.reservations[tr.ID] = r
	return r, nil
}

func (m *memRepo) matching(f model.ListFilter) []model.Reservation {
	var res []model.Reservation
	for _, r := range m.reservations {
		if f.RequesterID != nil && r.RequesterID != *f.RequesterID {
			continue
		}
		if f.Status != nil && model.ObservedStatus(r, f.Now) != *f.Status {
			continue
		}
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID.String() > res[j].ID.String()
	})
	return res
}

func (m *memRepo) ListReservations(_ context.Context, f model.ListFilter) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	res := m.matching(f)
	if f.Limit > 0 && uint64(len(res)) > f.Limit {
		res = res[:f.Limit]
	}
	return res, nil
}

func (m *memRepo) SummaryReservations(_ context.Context, f model.ListFilter) (model.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := f
	all.Status = nil
	var s model.Summary
	for _, r := range m.matching(all) {
		s.Total++
		switch r.Status {
		case model.StatusPending:
			s.Pending++
		case model.StatusApproved:
			s.Approved++
		case model.StatusRejected:
			s.Rejected++
		case model.StatusCancelled:
			s.Cancelled++
		}
		switch model.ObservedStatus(r, f.Now) {
		case model.StatusApproved:
			s.Active++
		case model.StatusCompleted:
			s.Completed++
		}
	}
	return s, nil
}

func (m *memRepo) ListAvailable(_ context.Context, kind model.Kind) ([]model.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var res []model.Resource
	for _, r := range m.resources {
		if r.Kind == kind && r.Status == model.ResourceAvailable {
			res = append(res, r)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (m *memRepo) GetResource(_ context.Context, kind model.Kind, id uuid.UUID) (model.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.resources {
		if r.Kind == kind && r.ID == id {
			return r, nil
		}
	}
	return model.Resource{}, errs.ErrNotFound
}

func (m *memRepo) ListSlotsByWeekday(_ context.Context, weekday model.Weekday) ([]model.TeachingSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.TeachingSlot
	for _, s := range m.slots {
		if s.Weekday == weekday {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *memRepo) GetProfile(_ context.Context, id uuid.UUID) (model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return model.Profile{}, errs.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) CreateNotification(_ context.Context, n model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cur := range m.notifications {
		if cur.ReservationID == n.ReservationID {
			return nil
		}
	}
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *memRepo) ListNotifications(_ context.Context, userID uuid.UUID, limit uint64) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Notification
	for i := len(m.notifications) - 1; i >= 0; i-- {
		if m.notifications[i].UserID == userID {
			res = append(res, m.notifications[i])
		}
	}
	if limit > 0 && uint64(len(res)) > limit {
		res = res[:limit]
	}
	return res, nil
}
