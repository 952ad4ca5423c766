package database

import (
	"fmt"
	"strings"
	"time"
)

type IntervalQuery struct {
	columns string
	filters []string
	args    []interface{}
	groupBy string
	orderBy string
	limit   int
}

func NewIntervalQuery() *IntervalQuery {
	return &IntervalQuery{columns: intervalColumns}
}

// NewStatsQuery aggregates closed intervals per task name.
func NewStatsQuery() *IntervalQuery {
	q := &IntervalQuery{
		columns: "task_name, COALESCE(SUM(duration_seconds), 0) AS total_seconds, COUNT(*) AS entry_count",
		groupBy: "task_name",
		orderBy: "total_seconds DESC, MIN(id) ASC",
	}
	return q.WhereClosed()
}

func (q *IntervalQuery) Where(filter string, args ...interface{}) *IntervalQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *IntervalQuery) WhereDate(day time.Time) *IntervalQuery {
	return q.Where("date(start_time) = ?", formatDate(day))
}

func (q *IntervalQuery) WhereDateBetween(from, to time.Time) *IntervalQuery {
	return q.Where("date(start_time) BETWEEN ? AND ?", formatDate(from), formatDate(to))
}

func (q *IntervalQuery) WhereClosed() *IntervalQuery {
	return q.Where("end_time IS NOT NULL")
}

func (q *IntervalQuery) WhereOpen() *IntervalQuery {
	return q.Where("end_time IS NULL")
}

func (q *IntervalQuery) OrderBy(orderBy string) *IntervalQuery {
	q.orderBy = orderBy
	return q
}

func (q *IntervalQuery) Limit(limit int) *IntervalQuery {
	q.limit = limit
	return q
}

func (q *IntervalQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM time_slots", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.groupBy != "" {
		query += " GROUP BY " + q.groupBy
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
