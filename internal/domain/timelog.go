package domain

import "time"

// TimeEntry records a finished block of tracked work.
type TimeEntry struct {
	ID       string
	Activity string
	Minutes  int
	Day      string
	LoggedAt time.Time
}

// ActiveTimer is the single in-progress tracking session. It is persisted as
// JSON in session state so it survives restarts.
type ActiveTimer struct {
	Activity  string    `json:"activity"`
	StartedAt time.Time `json:"started_at"`
}

// ElapsedMinutes returns the whole minutes between the timer's start and now,
// floored, never negative.
func (t ActiveTimer) ElapsedMinutes(now time.Time) int {
	m := int(now.Sub(t.StartedAt).Minutes())
	if m < 0 {
		return 0
	}
	return m
}
