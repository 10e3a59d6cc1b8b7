package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for user data files (rw-------)
	SecureFilePermissions = 0o600
)

// History constants
const (
	// DefaultHistoryKeep is how many raw input lines persist across sessions
	DefaultHistoryKeep = 100
	// HistoryDisplayCount is how many entries the history command prints
	HistoryDisplayCount = 10
)

// Transcript constants
const (
	// DefaultTranscriptKeep is how many transcript entries stay in memory
	DefaultTranscriptKeep = 500
)

// Time tracking constants
const (
	// TimeTodayDisplayCount is how many entries time.today lists
	TimeTodayDisplayCount = 5
)

// Identifier constants
const (
	// ShortIDLength is the number of id characters shown in listings
	ShortIDLength = 8
	// MinIDPrefixLength is the shortest id prefix accepted for lookups
	MinIDPrefixLength = 4
)

// Session state document keys
const (
	// StateKeyTheme holds the persisted theme name
	StateKeyTheme = "console.theme"
	// StateKeyTimer holds the active timer as a JSON object
	StateKeyTimer = "console.timer"
	// StateKeyHistory holds the persisted history tail as a JSON array
	StateKeyHistory = "console.history"
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
	// DayFormat is the calendar day format used for date flags and queries
	DayFormat = "2006-01-02"
	// ClockFormat is the short wall clock format used in console output
	ClockFormat = "15:04"
)
