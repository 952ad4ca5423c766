package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/models"
)

const entriesOrder = "start_time ASC, id ASC"

// EntriesForDate returns intervals started on day's local calendar date,
// open ones included, ordered by start time.
func (d *Database) EntriesForDate(ctx context.Context, day time.Time) ([]models.TimeInterval, error) {
	query, args := NewIntervalQuery().WhereDate(day).OrderBy(entriesOrder).Build()
	return d.queryIntervals(ctx, "list by date", query, args)
}

// EntriesForRange returns intervals started within [from, to] inclusive,
// ordered by start time.
func (d *Database) EntriesForRange(ctx context.Context, from, to time.Time) ([]models.TimeInterval, error) {
	if err := validateRange(from, to); err != nil {
		return nil, wrapIntervalErr("list by range", 0, err)
	}
	query, args := NewIntervalQuery().WhereDateBetween(from, to).OrderBy(entriesOrder).Build()
	return d.queryIntervals(ctx, "list by range", query, args)
}

func (d *Database) queryIntervals(ctx context.Context, op, query string, args []interface{}) ([]models.TimeInterval, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.TimeInterval, error) {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapIntervalErr(op, 0, err)
		}
		defer rows.Close()

		intervals := []models.TimeInterval{}
		for rows.Next() {
			i, err := scanInterval(rows)
			if err != nil {
				return nil, wrapIntervalErr(op, 0, err)
			}
			intervals = append(intervals, i)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapIntervalErr(op, 0, err)
		}
		return intervals, nil
	})
}
