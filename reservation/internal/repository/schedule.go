package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/sarpras/reservation-service/reservation/internal/model"
)

func (r *repository) ListSlotsByWeekday(ctx context.Context, weekday model.Weekday) ([]model.TeachingSlot, error) {
	query, args, err := qb.Select(
		"s.id", "s.instructor_id",
		"coalesce(p.full_name, '') as instructor_name",
		"s.weekday",
		"s.start_time::text as start_time",
		"s.end_time::text as end_time",
		"s.course_label", "s.resource_id").
		From(slotTableName + " s").
		LeftJoin(profileTableName + " p on p.id = s.instructor_id").
		Where(sq.Eq{"s.weekday": string(weekday)}).
		OrderBy("s.start_time asc", "s.id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err, "ListSlotsByWeekday")
	}
	defer rows.Close()

	slots, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.TeachingSlot])
	if err != nil {
		return nil, storeErr(err, "pgx.CollectRows")
	}
	return slots, nil
}
