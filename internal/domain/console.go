package domain

import (
	"fmt"
	"strings"
	"time"
)

// Classification labels a transcript entry's outcome.
type Classification string

const (
	ClassSuccess Classification = "success"
	ClassError   Classification = "error"
	ClassInfo    Classification = "info"
)

// Command is one parsed input line. Immutable once parsed; only its rendered
// outcome outlives dispatch.
type Command struct {
	Name       string
	Positional []string
	Flags      map[string]string
}

// TranscriptEntry is one executed command and its rendered output lines.
type TranscriptEntry struct {
	ID             string
	RawInput       string
	Output         []string
	Classification Classification
	Timestamp      time.Time
}

// Theme is the console color scheme.
type Theme string

const (
	ThemeGreen  Theme = "green"
	ThemePurple Theme = "purple"
	ThemeRed    Theme = "red"
	ThemeBlack  Theme = "black"
)

// DefaultTheme applies when no valid preference is stored.
const DefaultTheme = ThemePurple

// Themes lists the valid schemes in display order.
func Themes() []Theme {
	return []Theme{ThemeGreen, ThemePurple, ThemeRed, ThemeBlack}
}

// ParseTheme validates a requested scheme. A single leading dash is
// tolerated so "theme.change -green" works like "theme.change green".
func ParseTheme(raw string) (Theme, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "-")
	t := Theme(name)
	switch t {
	case ThemeGreen, ThemePurple, ThemeRed, ThemeBlack:
		return t, nil
	default:
		return "", fmt.Errorf("%w: theme must be one of green, purple, red, black", ErrInvalid)
	}
}

// View identifies a primary screen of the application.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewTodos     View = "todos"
	ViewTimelog   View = "timelog"
	ViewCalendar  View = "calendar"
	ViewNotes     View = "notes"
)

// Views lists the screens in navigation order.
func Views() []View {
	return []View{ViewDashboard, ViewTodos, ViewTimelog, ViewCalendar, ViewNotes}
}
