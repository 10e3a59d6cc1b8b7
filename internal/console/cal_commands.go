package console

import (
	"context"
	"fmt"
	"time"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

func (c *Console) registerCalendarCommands() {
	c.registry.add(&Handler{
		Name:    "cal.add",
		Family:  FamilyCalendar,
		Usage:   "cal.add <title> [-d YYYY-MM-DD]",
		Summary: "add a calendar event",
		Help: []string{
			"Adds an event titled with the given text. The date flag takes",
			"YYYY-MM-DD and defaults to today.",
			"Example: cal.add standup -d 2026-09-01",
		},
		Run: c.cmdCalAdd,
	})
	c.registry.add(&Handler{
		Name:    "cal.today",
		Family:  FamilyCalendar,
		Usage:   "cal.today",
		Summary: "list today's events",
		Run:     c.cmdCalToday,
	})
}

func (c *Console) cmdCalAdd(ctx context.Context, cmd domain.Command) (Result, error) {
	title := freeText(cmd.Positional)
	if title == "" {
		return Result{}, usageErrorf("event title required")
	}

	day := c.today()
	if raw, ok := cmd.Flags["date"]; ok {
		parsed, err := time.Parse(domain.DayFormat, raw)
		if err != nil {
			return Result{}, usageErrorf("date must be a valid YYYY-MM-DD day, got %q", raw)
		}
		day = parsed.Format(domain.DayFormat)
	}

	created, err := c.store.CreateEvent(ctx, domain.CalendarEvent{Title: title, Day: day})
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{
		fmt.Sprintf("event added: [%s] %s on %s", shortID(created.ID), created.Title, created.Day),
	}}, nil
}

func (c *Console) cmdCalToday(ctx context.Context, cmd domain.Command) (Result, error) {
	events, err := c.store.ListEventsOn(ctx, c.today())
	if err != nil {
		return Result{}, err
	}
	if len(events) == 0 {
		return Result{Lines: []string{"no events today"}, Class: domain.ClassInfo}, nil
	}

	lines := make([]string, 0, len(events))
	for i, ev := range events {
		lines = append(lines, fmt.Sprintf("%d. %s [%s]", i+1, ev.Title, shortID(ev.ID)))
	}
	return Result{Lines: lines}, nil
}
