package domain

import "time"

// CalendarEvent is a dated agenda item.
type CalendarEvent struct {
	ID        string
	Title     string
	Day       string
	CreatedAt time.Time
}
