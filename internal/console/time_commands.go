package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

func (c *Console) registerTimeCommands() {
	c.registry.add(&Handler{
		Name:    "time.start",
		Family:  FamilyTime,
		Usage:   "time.start <activity>",
		Summary: "start tracking an activity",
		Help: []string{
			"Starts the timer for the given activity. A timer that is",
			"already running is stopped first and its elapsed whole minutes",
			"are written to the time log.",
		},
		Run: c.cmdTimeStart,
	})
	c.registry.add(&Handler{
		Name:    "time.stop",
		Family:  FamilyTime,
		Usage:   "time.stop",
		Summary: "stop the running timer",
		Run:     c.cmdTimeStop,
	})
	c.registry.add(&Handler{
		Name:    "time.status",
		Family:  FamilyTime,
		Usage:   "time.status",
		Summary: "show the running timer",
		Run:     c.cmdTimeStatus,
	})
	c.registry.add(&Handler{
		Name:    "time.log",
		Family:  FamilyTime,
		Usage:   "time.log <activity> <minutes>",
		Summary: "log time manually",
		Help: []string{
			"Writes a finished entry directly, bypassing the timer. The",
			"last argument is the duration in whole minutes.",
			"Example: time.log code review 45",
		},
		Run: c.cmdTimeLog,
	})
	c.registry.add(&Handler{
		Name:    "time.today",
		Family:  FamilyTime,
		Usage:   "time.today",
		Summary: "summarize today's tracked time",
		Run:     c.cmdTimeToday,
	})
}

func (c *Console) cmdTimeStart(ctx context.Context, cmd domain.Command) (Result, error) {
	activity := freeText(cmd.Positional)
	if activity == "" {
		return Result{}, usageErrorf("activity label required")
	}

	now := c.clock.Now()
	var lines []string

	if prev, running := c.session.Timer(); running {
		minutes := prev.ElapsedMinutes(now)
		_, err := c.store.CreateTimeEntry(ctx, domain.TimeEntry{
			Activity: prev.Activity,
			Minutes:  minutes,
			Day:      now.Format(domain.DayFormat),
			LoggedAt: now,
		})
		if err != nil {
			return Result{}, err
		}
		lines = append(lines, fmt.Sprintf("stopped: %s (%d min)", prev.Activity, minutes))
	}

	if err := c.session.SetTimer(domain.ActiveTimer{Activity: activity, StartedAt: now}); err != nil {
		return Result{}, err
	}
	lines = append(lines, fmt.Sprintf("tracking: %s", activity))
	return Result{Lines: lines}, nil
}

func (c *Console) cmdTimeStop(ctx context.Context, cmd domain.Command) (Result, error) {
	timer, running := c.session.Timer()
	if !running {
		return Result{}, usageErrorf("no active timer")
	}

	now := c.clock.Now()
	minutes := timer.ElapsedMinutes(now)
	_, err := c.store.CreateTimeEntry(ctx, domain.TimeEntry{
		Activity: timer.Activity,
		Minutes:  minutes,
		Day:      now.Format(domain.DayFormat),
		LoggedAt: now,
	})
	if err != nil {
		return Result{}, err
	}
	if err := c.session.ClearTimer(); err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{fmt.Sprintf("stopped: %s (%d min)", timer.Activity, minutes)}}, nil
}

func (c *Console) cmdTimeStatus(ctx context.Context, cmd domain.Command) (Result, error) {
	timer, running := c.session.Timer()
	if !running {
		return Result{Lines: []string{"no active timer"}, Class: domain.ClassInfo}, nil
	}

	now := c.clock.Now()
	return Result{Lines: []string{
		fmt.Sprintf("tracking: %s", timer.Activity),
		fmt.Sprintf("started: %s", timer.StartedAt.Format(domain.ClockFormat)),
		fmt.Sprintf("elapsed: %d min", timer.ElapsedMinutes(now)),
	}, Class: domain.ClassInfo}, nil
}

func (c *Console) cmdTimeLog(ctx context.Context, cmd domain.Command) (Result, error) {
	if len(cmd.Positional) < 2 {
		return Result{}, usageErrorf("usage: time.log <activity> <minutes>")
	}

	last := cmd.Positional[len(cmd.Positional)-1]
	minutes, err := strconv.Atoi(last)
	if err != nil {
		return Result{}, usageErrorf("minutes must be a whole number, got %q", last)
	}
	if minutes < 0 {
		return Result{}, usageErrorf("minutes must not be negative")
	}

	activity := freeText(cmd.Positional[:len(cmd.Positional)-1])
	if activity == "" {
		return Result{}, usageErrorf("activity label required")
	}

	now := c.clock.Now()
	_, err = c.store.CreateTimeEntry(ctx, domain.TimeEntry{
		Activity: activity,
		Minutes:  minutes,
		Day:      now.Format(domain.DayFormat),
		LoggedAt: now,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{fmt.Sprintf("logged: %s (%d min)", activity, minutes)}}, nil
}

func (c *Console) cmdTimeToday(ctx context.Context, cmd domain.Command) (Result, error) {
	entries, err := c.store.ListTimeEntriesOn(ctx, c.today())
	if err != nil {
		return Result{}, err
	}
	if len(entries) == 0 {
		return Result{Lines: []string{"no time tracked today"}, Class: domain.ClassInfo}, nil
	}

	total := 0
	for _, e := range entries {
		total += e.Minutes
	}

	lines := []string{fmt.Sprintf("today: %d min tracked", total)}
	shown := entries
	if len(shown) > domain.TimeTodayDisplayCount {
		shown = shown[:domain.TimeTodayDisplayCount]
	}
	for _, e := range shown {
		lines = append(lines, fmt.Sprintf("- %s (%d min)", e.Activity, e.Minutes))
	}
	return Result{Lines: lines}, nil
}
