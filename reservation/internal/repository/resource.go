package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sarpras/reservation-service/reservation/internal/errs"
	"github.com/sarpras/reservation-service/reservation/internal/model"
)

func selectResources(kind model.Kind) (sq.SelectBuilder, error) {
	switch kind {
	case model.KindRoomKey:
		return qb.Select("id", "'room_key'::text as kind", "name", "location", "''::text as brand", "description", "status").
			From(roomTableName), nil
	case model.KindProjector:
		return qb.Select("id", "'projector'::text as kind", "name", "''::text as location", "brand", "description", "status").
			From(projectorTableName), nil
	}
	return sq.SelectBuilder{}, errs.ErrUnknownResource
}

func (r *repository) ListAvailable(ctx context.Context, kind model.Kind) ([]model.Resource, error) {
	q, err := selectResources(kind)
	if err != nil {
		return nil, err
	}
	query, args, err := q.
		Where(sq.Eq{"status": string(model.ResourceAvailable)}).
		OrderBy("name asc", "id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err, "ListAvailable")
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Resource])
	if err != nil {
		return nil, storeErr(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) GetResource(ctx context.Context, kind model.Kind, id uuid.UUID) (model.Resource, error) {
	q, err := selectResources(kind)
	if err != nil {
		return model.Resource{}, err
	}
	query, args, err := q.Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return model.Resource{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Resource{}, storeErr(err, "GetResource")
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Resource])
	if err != nil {
		return model.Resource{}, storeErr(err, fmt.Sprintf("GetResource %s %s", kind, id))
	}
	return res, nil
}
