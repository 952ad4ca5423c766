package database

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/models"
)

// StatsForDate sums closed intervals started on day, grouped by exact task
// name, largest total first.
func (d *Database) StatsForDate(ctx context.Context, day time.Time) ([]models.TaskStats, error) {
	query, args := NewStatsQuery().WhereDate(day).Build()
	return d.queryStats(ctx, "by date", query, args)
}

// StatsForRange is StatsForDate over the inclusive range [from, to].
func (d *Database) StatsForRange(ctx context.Context, from, to time.Time) ([]models.TaskStats, error) {
	if err := validateRange(from, to); err != nil {
		return nil, wrapErr(EntityStats, "by range", 0, err)
	}
	query, args := NewStatsQuery().WhereDateBetween(from, to).Build()
	return d.queryStats(ctx, "by range", query, args)
}

func (d *Database) queryStats(ctx context.Context, op, query string, args []interface{}) ([]models.TaskStats, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.TaskStats, error) {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapErr(EntityStats, op, 0, err)
		}
		defer rows.Close()

		stats := []models.TaskStats{}
		for rows.Next() {
			var s models.TaskStats
			if err := rows.Scan(&s.TaskName, &s.TotalSeconds, &s.EntryCount); err != nil {
				return nil, wrapErr(EntityStats, op, 0, err)
			}
			stats = append(stats, s)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityStats, op, 0, err)
		}
		return stats, nil
	})
}

// RecentTaskUsage returns distinct task names started within the last
// windowDays days (today included), most recently used first, then most
// frequently used.
func (d *Database) RecentTaskUsage(ctx context.Context, windowDays int) ([]models.TaskUsage, error) {
	if windowDays < 0 {
		return nil, wrapErr(EntityStats, "recent tasks", 0, fmt.Errorf("%w: negative window %d", ErrInvalidRange, windowDays))
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.TaskUsage, error) {
		today := d.clock()
		from := today.AddDate(0, 0, -windowDays)
		rows, err := d.DB.QueryContext(ctx, `
			SELECT task_name, MAX(start_time) AS last_used, COUNT(*) AS uses
			FROM time_slots
			WHERE date(start_time) BETWEEN ? AND ?
			GROUP BY task_name
			ORDER BY last_used DESC, uses DESC, MAX(id) DESC`,
			formatDate(from), formatDate(today))
		if err != nil {
			return nil, wrapErr(EntityStats, "recent tasks", 0, err)
		}
		defer rows.Close()

		usage := []models.TaskUsage{}
		for rows.Next() {
			var u models.TaskUsage
			var last localTime
			if err := rows.Scan(&u.TaskName, &last, &u.Uses); err != nil {
				return nil, wrapErr(EntityStats, "recent tasks", 0, err)
			}
			u.LastUsed = last.Time
			usage = append(usage, u)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityStats, "recent tasks", 0, err)
		}
		return usage, nil
	})
}

// RecentTaskNames is RecentTaskUsage reduced to the ranked names.
func (d *Database) RecentTaskNames(ctx context.Context, windowDays int) ([]string, error) {
	usage, err := d.RecentTaskUsage(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(usage))
	for _, u := range usage {
		names = append(names, u.TaskName)
	}
	return names, nil
}
