package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// paneContent builds the display lines for one view's data pane. Store
// failures degrade to a single message line; the transcript is the place
// where errors carry their full prefix discipline, not the pane.
func paneContent(ctx context.Context, deps Deps, view domain.View, now time.Time) []string {
	day := now.Format(domain.DayFormat)
	switch view {
	case domain.ViewTodos:
		return todosPane(ctx, deps.Store)
	case domain.ViewTimelog:
		return timelogPane(ctx, deps.Store, day)
	case domain.ViewCalendar:
		return calendarPane(ctx, deps.Store, day)
	case domain.ViewNotes:
		return notesPane(ctx, deps.Store)
	default:
		return dashboardPane(ctx, deps, day)
	}
}

func dashboardPane(ctx context.Context, deps Deps, day string) []string {
	tasks, err := deps.Store.ListTasks(ctx, ports.TaskFilter{})
	if err != nil {
		return offline(err)
	}
	open := 0
	for _, task := range tasks {
		if !task.Completed {
			open++
		}
	}

	events, err := deps.Store.ListEventsOn(ctx, day)
	if err != nil {
		return offline(err)
	}
	entries, err := deps.Store.ListTimeEntriesOn(ctx, day)
	if err != nil {
		return offline(err)
	}
	minutes := 0
	for _, entry := range entries {
		minutes += entry.Minutes
	}
	notes, err := deps.Store.ListNotes(ctx)
	if err != nil {
		return offline(err)
	}

	lines := []string{
		fmt.Sprintf("%d open tasks, %d total", open, len(tasks)),
		fmt.Sprintf("%d events today, %d minutes logged", len(events), minutes),
		fmt.Sprintf("%d notes on deck", len(notes)),
	}
	if timer, ok := deps.Console.Session().Timer(); ok {
		lines = append(lines, fmt.Sprintf("tracking %q, started %s", timer.Activity, humanize.Time(timer.StartedAt)))
	}
	return lines
}

func todosPane(ctx context.Context, store ports.Store) []string {
	tasks, err := store.ListTasks(ctx, ports.TaskFilter{})
	if err != nil {
		return offline(err)
	}
	if len(tasks) == 0 {
		return []string{"no tasks on deck"}
	}
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		glyph := "[ ]"
		if task.Completed {
			glyph = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s) %s", glyph, paneID(task.ID), task.Priority, task.Text))
	}
	return lines
}

func timelogPane(ctx context.Context, store ports.Store, day string) []string {
	entries, err := store.ListTimeEntriesOn(ctx, day)
	if err != nil {
		return offline(err)
	}
	if len(entries) == 0 {
		return []string{"nothing logged today"}
	}
	total := 0
	lines := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		total += entry.Minutes
		lines = append(lines, fmt.Sprintf("%s %4dm  %s", paneID(entry.ID), entry.Minutes, entry.Activity))
	}
	lines = append(lines, fmt.Sprintf("total %dm", total))
	return lines
}

func calendarPane(ctx context.Context, store ports.Store, day string) []string {
	events, err := store.ListEventsOn(ctx, day)
	if err != nil {
		return offline(err)
	}
	if len(events) == 0 {
		return []string{"no events today"}
	}
	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, fmt.Sprintf("%s %s  %s", paneID(event.ID), event.Day, event.Title))
	}
	return lines
}

func notesPane(ctx context.Context, store ports.Store) []string {
	notes, err := store.ListNotes(ctx)
	if err != nil {
		return offline(err)
	}
	if len(notes) == 0 {
		return []string{"no notes yet"}
	}
	lines := make([]string, 0, len(notes))
	for _, note := range notes {
		line := fmt.Sprintf("%s %s", paneID(note.ID), note.Title)
		if len(note.Tags) > 0 {
			line += "  #" + strings.Join(note.Tags, " #")
		}
		lines = append(lines, line)
	}
	return lines
}

func offline(err error) []string {
	return []string{"storage unavailable: " + err.Error()}
}

func paneID(id string) string {
	if len(id) <= domain.ShortIDLength {
		return id
	}
	return id[:domain.ShortIDLength]
}
