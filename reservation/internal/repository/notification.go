package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sarpras/reservation-service/reservation/internal/model"
)

// CreateNotification is idempotent per reservation, so a redelivered
// decision event is a no-op.
func (r *repository) CreateNotification(ctx context.Context, n model.Notification) error {
	query, args, err := qb.Insert(notificationTableName).
		Columns("id", "user_id", "reservation_id", "outcome", "message", "created_at").
		Values(n.ID, n.UserID, n.ReservationID, string(n.Outcome), n.Message, n.CreatedAt).
		Suffix("on conflict (reservation_id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return storeErr(err, "CreateNotification")
	}
	return nil
}

func (r *repository) ListNotifications(ctx context.Context, userID uuid.UUID, limit uint64) ([]model.Notification, error) {
	q := qb.Select("id", "user_id", "reservation_id", "outcome", "message", "created_at").
		From(notificationTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc", "id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err, "ListNotifications")
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
	if err != nil {
		return nil, storeErr(err, "pgx.CollectRows")
	}
	return items, nil
}
