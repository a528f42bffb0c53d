package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

var reservationColumns = []string{
	"r.id", "r.requester_id",
	"coalesce(p.full_name, '') as requester_name",
	"coalesce(p.nim_nip, '') as requester_nim_nip",
	"r.kind", "r.resource_id", "r.purpose", "r.start_at", "r.end_at",
	"r.status", "r.admin_annotation", "r.created_at", "r.updated_at",
}

func selectReservations() sq.SelectBuilder {
	return qb.Select(reservationColumns...).
		From(reservationTableName + " r").
		LeftJoin(profileTableName + " p on p.id = r.requester_id")
}

func (r *repository) CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	query, args, err := qb.Insert(reservationTableName).
		Columns("id", "requester_id", "kind", "resource_id", "purpose", "start_at", "end_at", "status", "created_at", "updated_at").
		Values(res.ID, res.RequesterID, res.Kind, res.ResourceID, res.Purpose, res.StartAt, res.EndAt, res.Status, res.CreatedAt, res.UpdatedAt).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("CreateReservation", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Reservation{}, storeErr(err, "CreateReservation")
	}
	return r.GetReservation(ctx, res.ID)
}

func (r *repository) GetReservation(ctx context.Context, id uuid.UUID) (model.Reservation, error) {
	query, args, err := selectReservations().
		Where(sq.Eq{"r.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Reservation{}, storeErr(err, "GetReservation")
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		return model.Reservation{}, storeErr(err, "GetReservation")
	}
	return res, nil
}

// TransitionReservation applies tr in a single conditional update. A row that
// no longer matches (gone, wrong status or wrong owner) yields
// errs.ErrInvalidTransition; the caller decides which of those it was.
func (r *repository) TransitionReservation(ctx context.Context, tr model.Transition) (model.Reservation, error) {
	q := `
with u as (
    update reservations
    set status = @to,
        admin_annotation = coalesce(@annotation, admin_annotation),
        updated_at = @at
    where id = @id
      and status = @from
      and (@requester::uuid is null or requester_id = @requester::uuid)
    returning *
)
select u.id, u.requester_id,
       coalesce(p.full_name, '') as requester_name,
       coalesce(p.nim_nip, '') as requester_nim_nip,
       u.kind, u.resource_id, u.purpose, u.start_at, u.end_at,
       u.status, u.admin_annotation, u.created_at, u.updated_at
from u left join profiles p on p.id = u.requester_id`

	args := pgx.NamedArgs{
		"id":         tr.ID,
		"from":       string(tr.From),
		"to":         string(tr.To),
		"annotation": tr.Annotation,
		"at":         tr.At,
		"requester":  tr.RequesterID,
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return model.Reservation{}, storeErr(err, "TransitionReservation")
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reservation{}, errs.ErrInvalidTransition
		}
		return model.Reservation{}, storeErr(err, "TransitionReservation")
	}
	return res, nil
}

// statusCond filters on the observed status rather than the stored one.
func statusCond(status model.Status, now interface{}) sq.Sqlizer {
	switch status {
	case model.StatusApproved:
		return sq.And{
			sq.Eq{"r.status": string(model.StatusApproved)},
			sq.GtOrEq{"r.end_at": now},
		}
	case model.StatusCompleted:
		return sq.Or{
			sq.Eq{"r.status": string(model.StatusCompleted)},
			sq.And{
				sq.Eq{"r.status": string(model.StatusApproved)},
				sq.Lt{"r.end_at": now},
			},
		}
	}
	return sq.Eq{"r.status": string(status)}
}

func (r *repository) ListReservations(ctx context.Context, f model.ListFilter) ([]model.Reservation, error) {
	q := selectReservations()
	if f.RequesterID != nil {
		q = q.Where(sq.Eq{"r.requester_id": *f.RequesterID})
	}
	if f.Status != nil {
		q = q.Where(statusCond(*f.Status, f.Now))
	}
	q = q.OrderBy("r.created_at desc", "r.id desc")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.debugSQL("ListReservations", query, args)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err, "ListReservations")
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		return nil, storeErr(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) SummaryReservations(ctx context.Context, f model.ListFilter) (model.Summary, error) {
	q := qb.Select("count(*) as total").
		Column("count(*) filter (where r.status = 'pending') as pending").
		Column("count(*) filter (where r.status = 'approved') as approved").
		Column(sq.Expr("count(*) filter (where r.status = 'approved' and r.end_at >= ?) as active", f.Now)).
		Column(sq.Expr("count(*) filter (where r.status = 'completed' or (r.status = 'approved' and r.end_at < ?)) as completed", f.Now)).
		Column("count(*) filter (where r.status = 'rejected') as rejected").
		Column("count(*) filter (where r.status = 'cancelled') as cancelled").
		From(reservationTableName + " r")
	if f.RequesterID != nil {
		q = q.Where(sq.Eq{"r.requester_id": *f.RequesterID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Summary{}, err
	}
	r.debugSQL("SummaryReservations", query, args)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Summary{}, storeErr(err, "SummaryReservations")
	}
	defer rows.Close()

	s, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Summary])
	if err != nil {
		return model.Summary{}, storeErr(err, "SummaryReservations")
	}
	return s, nil
}
