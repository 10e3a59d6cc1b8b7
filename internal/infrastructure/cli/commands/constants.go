package commands

// CLI-specific constants
const (
	// DefaultEditorCommand is the fallback when $EDITOR is unset
	DefaultEditorCommand = "vi"
	// DefaultHistoryLimit is how many history lines the list shows
	DefaultHistoryLimit = 20
)

// Error messages
const (
	ErrConsoleUnavailable       = "console unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrStateStoreUnavailable    = "state store unavailable"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgNoHistoryRecorded  = "No history recorded yet."
	MsgStateEmpty         = "No session state recorded yet."
	MsgInitCancelled      = "Init cancelled."
)
