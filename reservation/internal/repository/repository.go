package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

type ReservationRepository interface {
	CreateReservation(ctx context.Context, r model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (model.Reservation, error)
	TransitionReservation(ctx context.Context, tr model.Transition) (model.Reservation, error)
	ListReservations(ctx context.Context, f model.ListFilter) ([]model.Reservation, error)
	SummaryReservations(ctx context.Context, f model.ListFilter) (model.Summary, error)
}

type ResourceRepository interface {
	ListAvailable(ctx context.Context, kind model.Kind) ([]model.Resource, error)
	GetResource(ctx context.Context, kind model.Kind, id uuid.UUID) (model.Resource, error)
}

type ScheduleRepository interface {
	ListSlotsByWeekday(ctx context.Context, weekday model.Weekday) ([]model.TeachingSlot, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (model.Profile, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, limit uint64) ([]model.Notification, error)
}

type Repository interface {
	ReservationRepository
	ResourceRepository
	ScheduleRepository
	ProfileRepository
	NotificationRepository
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	reservationTableName  = `reservations`
	profileTableName      = `profiles`
	roomTableName         = `rooms`
	projectorTableName    = `projectors`
	slotTableName         = `teaching_slots`
	notificationTableName = `notifications`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// storeErr translates driver failures into the errs vocabulary.
func storeErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return errors.Wrapf(errs.ErrStoreUnavailable, "%s: %s", op, pgErr.Message)
		case pgErr.Code == pgerrcode.CheckViolation:
			return &errs.ValidationError{Field: pgErr.ConstraintName, Message: pgErr.Message}
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return &errs.ValidationError{Field: pgErr.ConstraintName, Message: "referenced row does not exist", Err: errs.ErrNotFound}
		}
		return errors.Wrap(err, op)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrapf(errs.ErrStoreUnavailable, "%s: %v", op, err)
	}
	return errors.Wrap(err, op)
}

func (r *repository) debugSQL(op, query string, args []any) {
	r.log.Debug(op, zap.String("q", query), zap.Any("args", args))
}

func (r *repository) GetProfile(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	query, args, err := qb.Select("id", "full_name", "nim_nip", "role").
		From(profileTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Profile{}, storeErr(err, "GetProfile")
	}
	defer rows.Close()

	p, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
	if err != nil {
		return model.Profile{}, storeErr(err, fmt.Sprintf("GetProfile %s", id))
	}
	return p, nil
}
