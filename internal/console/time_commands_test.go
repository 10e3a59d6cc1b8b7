package console

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/pkg/clock"
)

func TestTimeStartThenStopLogsFlooredMinutes(t *testing.T) {
	c, store, _, _, fake := newTestConsole(t)
	ctx := context.Background()

	start := c.Execute(ctx, "time.start deep work")
	if start.Entry.Classification != domain.ClassSuccess {
		t.Fatalf("start classification = %s, output %v", start.Entry.Classification, start.Entry.Output)
	}

	fake.Advance(125 * time.Second)

	stop := c.Execute(ctx, "time.stop")
	if stop.Entry.Classification != domain.ClassSuccess {
		t.Fatalf("stop classification = %s, output %v", stop.Entry.Classification, stop.Entry.Output)
	}
	if len(store.entries) != 1 {
		t.Fatalf("entries persisted = %d, want 1", len(store.entries))
	}
	if store.entries[0].Minutes != 2 {
		t.Fatalf("minutes = %d, want floor(125s) = 2", store.entries[0].Minutes)
	}
	if store.entries[0].Activity != "deep work" {
		t.Fatalf("activity = %q", store.entries[0].Activity)
	}
	if _, running := c.Session().Timer(); running {
		t.Fatal("timer should be cleared after stop")
	}
}

func TestTimeStartImplicitlyStopsRunningTimer(t *testing.T) {
	c, store, _, _, fake := newTestConsole(t)
	ctx := context.Background()

	c.Execute(ctx, "time.start alpha")
	fake.Advance(10 * time.Minute)
	restart := c.Execute(ctx, "time.start beta")

	if len(store.entries) != 1 {
		t.Fatalf("entries persisted = %d, want exactly 1 for alpha", len(store.entries))
	}
	if store.entries[0].Activity != "alpha" || store.entries[0].Minutes != 10 {
		t.Fatalf("persisted entry = %+v", store.entries[0])
	}

	timer, running := c.Session().Timer()
	if !running || timer.Activity != "beta" {
		t.Fatalf("timer = (%+v, %v), want running beta", timer, running)
	}
	if !timer.StartedAt.Equal(fake.Now()) {
		t.Fatalf("timer should restart fresh, started %v now %v", timer.StartedAt, fake.Now())
	}

	joined := strings.Join(restart.Entry.Output, "\n")
	if !strings.Contains(joined, "stopped: alpha (10 min)") || !strings.Contains(joined, "tracking: beta") {
		t.Fatalf("restart output = %v", restart.Entry.Output)
	}
}

func TestTimeStartRequiresLabel(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "time.start")
	if outcome.Entry.Classification != domain.ClassError {
		t.Fatalf("classification = %s, want error", outcome.Entry.Classification)
	}
	if !strings.Contains(outcome.Entry.Output[0], "activity label") {
		t.Fatalf("output = %v", outcome.Entry.Output)
	}
}

func TestTimeStopWithoutTimerErrors(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "time.stop")
	if outcome.Entry.Classification != domain.ClassError {
		t.Fatalf("classification = %s, want error", outcome.Entry.Classification)
	}
	if !strings.HasPrefix(outcome.Entry.Output[0], "ERROR: no active timer") {
		t.Fatalf("output = %v", outcome.Entry.Output)
	}
	if len(store.entries) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestTimeStatusReportsRunningTimer(t *testing.T) {
	c, _, _, _, fake := newTestConsole(t)
	ctx := context.Background()

	c.Execute(ctx, "time.start code review")
	fake.Advance(61 * time.Minute)

	outcome := c.Execute(ctx, "time.status")
	joined := strings.Join(outcome.Entry.Output, "\n")
	if !strings.Contains(joined, "tracking: code review") {
		t.Fatalf("status output = %v", outcome.Entry.Output)
	}
	if !strings.Contains(joined, "elapsed: 61 min") {
		t.Fatalf("status should report elapsed minutes, got %v", outcome.Entry.Output)
	}
}

func TestTimeStatusWithoutTimerIsInformational(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "time.status")
	if outcome.Entry.Classification != domain.ClassInfo {
		t.Fatalf("classification = %s, want info", outcome.Entry.Classification)
	}
	if !strings.Contains(outcome.Entry.Output[0], "no active timer") {
		t.Fatalf("output = %v", outcome.Entry.Output)
	}
}

func TestTimeLogWritesEntryDirectly(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "time.log code review 45")
	if outcome.Entry.Classification != domain.ClassSuccess {
		t.Fatalf("classification = %s, output %v", outcome.Entry.Classification, outcome.Entry.Output)
	}
	if len(store.entries) != 1 {
		t.Fatalf("entries persisted = %d, want 1", len(store.entries))
	}
	if store.entries[0].Activity != "code review" || store.entries[0].Minutes != 45 {
		t.Fatalf("entry = %+v", store.entries[0])
	}
	if _, running := c.Session().Timer(); running {
		t.Fatal("time.log must not touch the active timer")
	}
}

func TestTimeLogRejectsNonIntegerMinutes(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "time.log code review soon")
	if outcome.Entry.Classification != domain.ClassError {
		t.Fatalf("classification = %s, want error", outcome.Entry.Classification)
	}
	if !strings.Contains(outcome.Entry.Output[0], "whole number") {
		t.Fatalf("output = %v", outcome.Entry.Output)
	}
	if len(store.entries) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestTimeTodaySumsAndListsMostRecentFive(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		c.Execute(ctx, fmt.Sprintf("time.log block %d %d", i, i*10))
	}

	outcome := c.Execute(ctx, "time.today")
	lines := outcome.Entry.Output
	if lines[0] != "today: 280 min tracked" {
		t.Fatalf("summary line = %q", lines[0])
	}
	if len(lines) != 1+domain.TimeTodayDisplayCount {
		t.Fatalf("lines = %d, want summary plus %d entries: %v", len(lines), domain.TimeTodayDisplayCount, lines)
	}
	// Most recent first.
	if !strings.Contains(lines[1], "block 7") || !strings.Contains(lines[5], "block 3") {
		t.Fatalf("expected most recent five, got %v", lines[1:])
	}
}

func TestTimeTodayEmptyIsInformational(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "time.today")
	if outcome.Entry.Classification != domain.ClassInfo {
		t.Fatalf("classification = %s, want info", outcome.Entry.Classification)
	}
}

func TestTimerSurvivesConsoleRestart(t *testing.T) {
	store := &stubStore{}
	nav := &stubNav{current: domain.ViewDashboard}
	kv := newStubKV()
	fake := clock.NewFake(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))

	first := mustConsole(t, store, nav, kv, fake)
	first.Execute(context.Background(), "time.start long haul")

	fake.Advance(30 * time.Minute)

	second := mustConsole(t, store, nav, kv, fake)
	outcome := second.Execute(context.Background(), "time.status")
	joined := strings.Join(outcome.Entry.Output, "\n")
	if !strings.Contains(joined, "tracking: long haul") || !strings.Contains(joined, "elapsed: 30 min") {
		t.Fatalf("rehydrated status = %v", outcome.Entry.Output)
	}
}
