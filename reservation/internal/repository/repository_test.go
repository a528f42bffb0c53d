package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

func Test_storeErr(t *testing.T) {
	t.Parallel()
	require.NoError(t, storeErr(nil, "op"))
	require.ErrorIs(t, storeErr(pgx.ErrNoRows, "op"), errs.ErrNotFound)
	require.ErrorIs(t, storeErr(fmt.Errorf("scan: %w", pgx.ErrNoRows), "op"), errs.ErrNotFound)

	for _, code := range []string{pgerrcode.ConnectionFailure, pgerrcode.TooManyConnections, pgerrcode.AdminShutdown} {
		err := storeErr(&pgconn.PgError{Code: code, Message: "down"}, "op")
		require.ErrorIs(t, err, errs.ErrStoreUnavailable, code)
	}
	require.ErrorIs(t, storeErr(context.DeadlineExceeded, "op"), errs.ErrStoreUnavailable)

	err := storeErr(&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "reservations_check"}, "op")
	require.True(t, errs.IsValidation(err))

	err = storeErr(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "op")
	require.True(t, errs.IsValidation(err))
	require.ErrorIs(t, err, errs.ErrNotFound)

	err = storeErr(&pgconn.PgError{Code: pgerrcode.SyntaxError}, "op")
	require.Equal(t, "internal", errs.Kind(err))
}

func Test_statusCond(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 10, 10, 1, 0, 0, time.UTC)

	sql, args, err := statusCond(model.StatusCompleted, now).ToSql()
	require.NoError(t, err)
	require.Equal(t, "(r.status = ? OR (r.status = ? AND r.end_at < ?))", sql)
	require.Equal(t, []interface{}{"completed", "approved", now}, args)

	sql, args, err = statusCond(model.StatusApproved, now).ToSql()
	require.NoError(t, err)
	require.Equal(t, "(r.status = ? AND r.end_at >= ?)", sql)
	require.Equal(t, []interface{}{"approved", now}, args)

	sql, _, err = statusCond(model.StatusPending, now).ToSql()
	require.NoError(t, err)
	require.Equal(t, "r.status = ?", sql)
}

type stubResources struct {
	calls int
	items []model.Resource
}

func (s *stubResources) ListAvailable(context.Context, model.Kind) ([]model.Resource, error) {
	s.calls++
	return s.items, nil
}

func (s *stubResources) GetResource(_ context.Context, kind model.Kind, id uuid.UUID) (model.Resource, error) {
	return model.Resource{ID: id, Kind: kind}, nil
}

func TestNewCachedResources(t *testing.T) {
	t.Parallel()
	log := zap.NewNop()
	next := &stubResources{items: []model.Resource{{Name: "Lab 1"}}}

	t.Run("disabled", func(t *testing.T) {
		require.Same(t, next, NewCachedResources(next, nil, time.Minute, log))
	})

	t.Run("redis down falls back to store", func(t *testing.T) {
		rdb := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		})
		defer rdb.Close()

		cached := NewCachedResources(next, rdb, time.Minute, log)
		items, err := cached.ListAvailable(context.Background(), model.KindRoomKey)
		require.NoError(t, err)
		require.Equal(t, next.items, items)
		require.Equal(t, 1, next.calls)

		res, err := cached.GetResource(context.Background(), model.KindProjector, uuid.Nil)
		require.NoError(t, err)
		require.Equal(t, model.KindProjector, res.Kind)
	})
}
