package domain

import "time"

// Note is a free-form text record with optional tags.
type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
}
