package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/util"
)

// nullableTime converts an optional timestamp to a SQL argument.
// nil is stored as NULL.
func nullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTimestamp(*t), Valid: true}
}

func formatTimestamp(t time.Time) string {
	return t.In(time.Local).Format(config.TimestampLayout)
}

func formatDate(t time.Time) string {
	return t.In(time.Local).Format(config.DateLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return util.ParseTimestamp(s)
}

// localTime scans a wall-clock column. The driver hands DATETIME columns back
// as time.Time in UTC carrying the stored wall clock; expressions come back as
// text. Both are read as local time.
type localTime struct {
	Time  time.Time
	Valid bool
}

func (t *localTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time = time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), 0, time.Local)
		t.Valid = true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	}
	return fmt.Errorf("cannot scan %T into local time", value)
}

func (t *localTime) parse(s string) error {
	parsed, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time, t.Valid = parsed, true
	return nil
}

func (t localTime) ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
