package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
	"github.com/sarpras/reservation-service/reservation/internal/service"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *testClock) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}

type fixture struct {
	repo      *memRepo
	clock     *testClock
	svc       *service.Service
	room      model.Resource
	projector model.Resource
	admin     model.Actor
	alice     model.Actor
	bob       model.Actor
}

func newFixture(t *testing.T, opts ...service.Option) *fixture {
	t.Helper()
	f := &fixture{
		repo:  newMemRepo(),
		clock: &testClock{now: time.Date(2025, 1, 9, 8, 0, 0, 0, time.UTC)},
		room: model.Resource{
			ID: uuid.New(), Kind: model.KindRoomKey, Name: "Lab Komputer 2", Location: "Gedung B", Status: model.ResourceAvailable,
		},
		projector: model.Resource{
			ID: uuid.New(), Kind: model.KindProjector, Name: "Epson EB-X05", Brand: "Epson", Status: model.ResourceAvailable,
		},
		admin: model.Actor{ID: uuid.New(), Role: model.RoleAdmin},
		alice: model.Actor{ID: uuid.New(), Role: model.RoleStudent},
		bob:   model.Actor{ID: uuid.New(), Role: model.RoleFaculty},
	}
	f.repo.resources = []model.Resource{
		f.room,
		f.projector,
		{ID: uuid.New(), Kind: model.KindRoomKey, Name: "Aula", Status: model.ResourceAvailable},
		{ID: uuid.New(), Kind: model.KindRoomKey, Name: "Gudang", Status: model.ResourceUnavailable},
	}
	for _, a := range []model.Actor{f.admin, f.alice, f.bob} {
		f.repo.profiles[a.ID] = model.Profile{ID: a.ID, FullName: string(a.Role), Role: a.Role}
	}
	opts = append([]service.Option{service.WithClock(f.clock.Now)}, opts...)
	f.svc = service.NewService(f.repo, zap.NewNop(), opts...)
	return f
}

func (f *fixture) submit(t *testing.T, actor model.Actor) model.Reservation {
	t.Helper()
	res, err := f.svc.Submit(context.Background(), actor, model.SubmitRequest{
		Kind:       model.KindRoomKey,
		ResourceID: f.room.ID,
		Purpose:    "Kelas Algoritma",
		StartAt:    time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return res
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	start := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       func(f *fixture) model.SubmitRequest
		wantField string
		wantErr   error
	}{
		{
			name: "ok room key",
			req: func(f *fixture) model.SubmitRequest {
				return model.SubmitRequest{Kind: model.KindRoomKey, ResourceID: f.room.ID, Purpose: "  Rapat HIMA ", StartAt: start, EndAt: start.Add(time.Hour)}
			},
		},
		{
			name: "ok projector one minute",
			req: func(f *fixture) model.SubmitRequest {
				return model.SubmitRequest{Kind: model.KindProjector, ResourceID: f.projector.ID, Purpose: "Seminar", StartAt: start, EndAt: start.Add(time.Minute)}
			},
		},
		{
			name: "err. blank purpose",
			req: func(f *fixture) model.SubmitRequest {
				return model.SubmitRequest{Kind: model.KindRoomKey, ResourceID: f.room.ID, Purpose: " \t", StartAt: start, EndAt: start.Add(time.Hour)}
			},
			wantField: "purpose",
		},
		{
			name: "err. zero duration",
			req: func(f *fixture) model.SubmitRequest {
				return model.SubmitRequest{Kind: model.KindRoomKey, ResourceID: f.room.ID, Purpose: "x", StartAt: start, EndAt: start}
			},
			wantField: "endAt",
		},
		{
			name: "err. negative duration",
			req: func(f *fixture) model.SubmitRequest {
				return model.SubmitRequest{Kind: model.KindRoomKey, ResourceID: f.room.ID, Purpose: "x", StartAt: start, EndAt: start.Add(-time.Hour)}
			},
			wantField: "endAt",
		},
		{
			name: "err. resource of another kind",
			req: func(f *fixture) model.SubmitRequest {
				return model.SubmitRequest{Kind: model.KindProjector, ResourceID: f.room.ID, Purpose: "x", StartAt: start, EndAt: start.Add(time.Hour)}
			},
			wantField: "resourceId",
			wantErr:   errs.ErrUnknownResource,
		},
		{
			name: "err. unknown kind",
			req: func(f *fixture) model.SubmitRequest {
				return model.SubmitRequest{Kind: "laptop", ResourceID: f.room.ID, Purpose: "x", StartAt: start, EndAt: start.Add(time.Hour)}
			},
			wantField: "kind",
			wantErr:   errs.ErrUnknownResource,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			req := tt.req(f)
			res, err := f.svc.Submit(context.Background(), f.alice, req)
			if tt.wantField != "" {
				var ve *errs.ValidationError
				require.True(t, errors.As(err, &ve), "got %v", err)
				require.Equal(t, tt.wantField, ve.Field)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}
				require.Empty(t, f.repo.reservations)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.StatusPending, res.Status)
			require.Equal(t, model.StatusPending, res.EffectiveStatus)
			require.Equal(t, res.CreatedAt, res.UpdatedAt)
			require.Equal(t, f.clock.Now(), res.CreatedAt)
			require.Equal(t, f.alice.ID, res.RequesterID)
			require.Nil(t, res.AdminAnnotation)
			require.Equal(t, strings.TrimSpace(req.Purpose), res.Purpose)

			stored, err := f.repo.GetReservation(context.Background(), res.ID)
			require.NoError(t, err)
			require.Equal(t, model.StatusPending, stored.Status)
		})
	}
}

func TestService_Submit_NoDoubleBookingCheck(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	first := f.submit(t, f.alice)
	second := f.submit(t, f.bob)
	require.NotEqual(t, first.ID, second.ID)
	require.Len(t, f.repo.reservations, 2)
}

func TestService_Submit_StoreUnavailable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.repo.failWith = errors.Wrap(errs.ErrStoreUnavailable, "connection refused")
	_, err := f.svc.Submit(context.Background(), f.alice, model.SubmitRequest{
		Kind: model.KindRoomKey, ResourceID: f.room.ID, Purpose: "x",
		StartAt: f.clock.Now(), EndAt: f.clock.Now().Add(time.Hour),
	})
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

func TestService_ApproveScenario(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	res := f.submit(t, f.alice)
	require.Equal(t, model.StatusPending, res.Status)

	f.clock.Advance(time.Minute)
	approved, err := f.svc.Decide(ctx, f.admin, res.ID, model.StatusApproved, nil)
	require.NoError(t, err)
	require.Equal(t, model.StatusApproved, approved.Status)
	require.Nil(t, approved.AdminAnnotation)
	require.True(t, approved.UpdatedAt.After(approved.CreatedAt))

	f.clock.Set(time.Date(2025, 1, 10, 10, 1, 0, 0, time.UTC))
	got, err := f.svc.Get(ctx, f.alice, res.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusApproved, got.Status)
	require.Equal(t, model.StatusCompleted, got.EffectiveStatus)
	require.Equal(t, model.StatusCompleted, model.ObservedStatus(got, f.clock.Now()))
}

func TestService_CancelScenario(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	res := f.submit(t, f.bob)

	_, err := f.svc.Cancel(ctx, f.alice, res.ID)
	require.ErrorIs(t, err, errs.ErrNotOwner)

	cancelled, err := f.svc.Cancel(ctx, f.bob, res.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCancelled, cancelled.Status)

	_, err = f.svc.Cancel(ctx, f.bob, res.ID)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = f.svc.Cancel(ctx, f.bob, uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_Decide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		actor      func(f *fixture) model.Actor
		outcome    model.Status
		annotation *string
		wantErr    error
		wantStatus model.Status
	}{
		{
			name:       "reject with annotation",
			actor:      func(f *fixture) model.Actor { return f.admin },
			outcome:    model.StatusRejected,
			annotation: ptr("x"),
			wantStatus: model.StatusRejected,
		},
		{
			name:       "approve with note",
			actor:      func(f *fixture) model.Actor { return f.admin },
			outcome:    model.StatusApproved,
			annotation: ptr("ambil kunci di pos satpam"),
			wantStatus: model.StatusApproved,
		},
		{
			name:    "err. reject without annotation",
			actor:   func(f *fixture) model.Actor { return f.admin },
			outcome: model.StatusRejected,
			wantErr: errs.ErrMissingAnnotation,
		},
		{
			name:       "err. reject with blank annotation",
			actor:      func(f *fixture) model.Actor { return f.admin },
			outcome:    model.StatusRejected,
			annotation: ptr("   "),
			wantErr:    errs.ErrMissingAnnotation,
		},
		{
			name:    "err. student",
			actor:   func(f *fixture) model.Actor { return f.alice },
			outcome: model.StatusApproved,
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "err. faculty",
			actor:   func(f *fixture) model.Actor { return f.bob },
			outcome: model.StatusApproved,
			wantErr: errs.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			res := f.submit(t, f.alice)

			got, err := f.svc.Decide(context.Background(), tt.actor(f), res.ID, tt.outcome, tt.annotation)
			stored, _ := f.repo.GetReservation(context.Background(), res.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, model.StatusPending, stored.Status)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
			require.Equal(t, tt.annotation, got.AdminAnnotation)
			require.Equal(t, tt.wantStatus, stored.Status)
		})
	}

	t.Run("err. unknown outcome", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		res := f.submit(t, f.alice)
		_, err := f.svc.Decide(context.Background(), f.admin, res.ID, model.StatusCancelled, nil)
		require.True(t, errs.IsValidation(err))
	})

	t.Run("err. not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.Decide(context.Background(), f.admin, uuid.New(), model.StatusApproved, nil)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_SettledReservationsRejectTransitions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	settle := map[model.Status]func(id uuid.UUID) error{
		model.StatusApproved: func(id uuid.UUID) error {
			_, err := f.svc.Decide(ctx, f.admin, id, model.StatusApproved, nil)
			return err
		},
		model.StatusRejected: func(id uuid.UUID) error {
			_, err := f.svc.Decide(ctx, f.admin, id, model.StatusRejected, ptr("jadwal bentrok"))
			return err
		},
		model.StatusCancelled: func(id uuid.UUID) error {
			_, err := f.svc.Cancel(ctx, f.alice, id)
			return err
		},
	}
	for status, apply := range settle {
		res := f.submit(t, f.alice)
		require.NoError(t, apply(res.ID))

		for _, actor := range []model.Actor{f.admin, f.alice, f.bob} {
			_, err := f.svc.Cancel(ctx, actor, res.ID)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition, "cancel %s by %s", status, actor.Role)

			for _, outcome := range []model.Status{model.StatusApproved, model.StatusRejected} {
				_, err = f.svc.Decide(ctx, actor, res.ID, outcome, ptr("x"))
				assert.ErrorIs(t, err, errs.ErrInvalidTransition, "decide %s on %s by %s", outcome, status, actor.Role)
			}
		}
		stored, err := f.repo.GetReservation(ctx, res.ID)
		require.NoError(t, err)
		require.Equal(t, status, stored.Status)
	}

	// an approved reservation that has ended reads as completed and stays immutable
	res := f.submit(t, f.alice)
	require.NoError(t, settle[model.StatusApproved](res.ID))
	f.clock.Set(res.EndAt.Add(time.Hour))
	_, err := f.svc.Cancel(ctx, f.alice, res.ID)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestService_ConcurrentDecide(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	res := f.submit(t, f.alice)

	const admins = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		conflict int
	)
	for i := 0; i < admins; i++ {
		outcome := model.StatusApproved
		if i%2 == 1 {
			outcome = model.StatusRejected
		}
		wg.Add(1)
		go func(outcome model.Status) {
			defer wg.Done()
			admin := model.Actor{ID: uuid.New(), Role: model.RoleAdmin}
			_, err := f.svc.Decide(context.Background(), admin, res.ID, outcome, ptr("diputuskan"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, errs.ErrInvalidTransition):
				conflict++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(outcome)
	}
	wg.Wait()
	require.Equal(t, 1, ok)
	require.Equal(t, admins-1, conflict)
}

func TestService_ConcurrentCancelAndDecide(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	res := f.submit(t, f.alice)

	errCh := make(chan error, 2)
	go func() {
		_, err := f.svc.Cancel(context.Background(), f.alice, res.ID)
		errCh <- err
	}()
	go func() {
		_, err := f.svc.Decide(context.Background(), f.admin, res.ID, model.StatusApproved, nil)
		errCh <- err
	}()
	first, second := <-errCh, <-errCh
	if first == nil {
		require.ErrorIs(t, second, errs.ErrInvalidTransition)
	} else {
		require.NoError(t, second)
		require.ErrorIs(t, first, errs.ErrInvalidTransition)
	}
}

func TestService_Get(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	res := f.submit(t, f.alice)

	got, err := f.svc.Get(ctx, f.alice, res.ID)
	require.NoError(t, err)
	require.Equal(t, res.ID, got.ID)

	_, err = f.svc.Get(ctx, f.admin, res.ID)
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, f.bob, res.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = f.svc.Get(ctx, f.alice, uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)
}
