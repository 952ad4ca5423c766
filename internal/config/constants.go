package config

import "time"

// Timer refresh and defaults.
const (
	TickInterval            = time.Second
	DefaultRecentWindow     = 14
	DefaultStatementTimeout = 5 * time.Second
	DefaultBusyTimeout      = 5 * time.Second
)

// Wall-clock layouts. All timestamps are local time.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
	DisplayDate     = "02.01.2006"
	DisplayDateTime = "02.01.2006 15:04"
)

// Database/application settings.
const (
	AppName         = "lighttrack"
	DBFileName      = "time_tracking.db"
	ConfigFileName  = "lighttrack"
	DefaultHTTPAddr = "127.0.0.1:7465"
)
