package console

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

func TestHelpListsEveryRegisteredCommand(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "help")
	joined := strings.Join(outcome.Entry.Output, "\n")
	for _, name := range []string{
		"nav.dashboard", "nav.back", "sys.reload",
		"todo.add", "todo.list", "todo.complete", "todo.delete",
		"time.start", "time.stop", "time.status", "time.log", "time.today",
		"cal.add", "cal.today",
		"note.add", "note.search",
		"help", "history", "clear", "theme.change", "sys.status",
	} {
		if !strings.Contains(joined, name) {
			t.Errorf("help output missing %q", name)
		}
	}
}

func TestHelpForCommandShowsDetailAndAliases(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "help nav.back")
	joined := strings.Join(outcome.Entry.Output, "\n")
	if !strings.Contains(joined, "navigation stack") {
		t.Fatalf("detailed help missing, got:\n%s", joined)
	}
}

func TestHelpForUnknownOrUndocumentedFallsBack(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)
	ctx := context.Background()

	unknown := c.Execute(ctx, "help warpdrive")
	if !strings.Contains(unknown.Entry.Output[0], "no help available") {
		t.Fatalf("output = %v", unknown.Entry.Output)
	}

	// sys.status registers no detailed help text.
	undocumented := c.Execute(ctx, "help sys.status")
	if !strings.Contains(undocumented.Entry.Output[0], "no help available") {
		t.Fatalf("output = %v", undocumented.Entry.Output)
	}
}

func TestHistoryShowsLastTenWithAbsoluteNumbers(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)
	ctx := context.Background()

	for i := 1; i <= 14; i++ {
		c.Execute(ctx, fmt.Sprintf("sys.status %d", i))
	}

	outcome := c.Execute(ctx, "history")
	lines := outcome.Entry.Output
	if len(lines) != domain.HistoryDisplayCount {
		t.Fatalf("history lines = %d, want %d: %v", len(lines), domain.HistoryDisplayCount, lines)
	}
	// 15 submissions total including the history command itself; the window
	// starts at absolute position 6.
	if lines[0] != "6. sys.status 6" {
		t.Fatalf("first line = %q, want %q", lines[0], "6. sys.status 6")
	}
	if lines[len(lines)-1] != "15. history" {
		t.Fatalf("last line = %q, want %q", lines[len(lines)-1], "15. history")
	}
}

func TestThemeChangePersistsAndValidates(t *testing.T) {
	c, _, _, kv, _ := newTestConsole(t)
	ctx := context.Background()

	good := c.Execute(ctx, "theme.change purple")
	if good.Entry.Classification != domain.ClassSuccess {
		t.Fatalf("classification = %s, output %v", good.Entry.Classification, good.Entry.Output)
	}

	bad := c.Execute(ctx, "theme.change bogus")
	if bad.Entry.Classification != domain.ClassError {
		t.Fatalf("classification = %s, want error", bad.Entry.Classification)
	}
	if !strings.Contains(bad.Entry.Output[0], "green, purple, red, black") {
		t.Fatalf("error should list valid themes, got %v", bad.Entry.Output)
	}

	if stored, _, _ := kv.Get(keyTheme); stored != "purple" {
		t.Fatalf("persisted theme = %q, want purple after failed change", stored)
	}
	if c.Theme() != domain.ThemePurple {
		t.Fatalf("theme = %s, want purple", c.Theme())
	}
}

func TestThemeChangeAcceptsDashPrefixedValue(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "theme.change -green")
	if outcome.Entry.Classification != domain.ClassSuccess {
		t.Fatalf("classification = %s, output %v", outcome.Entry.Classification, outcome.Entry.Output)
	}
	if c.Theme() != domain.ThemeGreen {
		t.Fatalf("theme = %s, want green", c.Theme())
	}
}

func TestThemeChangeRequiresArgument(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "theme.change")
	if outcome.Entry.Classification != domain.ClassError {
		t.Fatalf("classification = %s, want error", outcome.Entry.Classification)
	}
}

func TestSysStatusReportsViewTimerAndTime(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)
	ctx := context.Background()

	c.Execute(ctx, "nav.timelog")
	c.Execute(ctx, "time.start wiring")

	outcome := c.Execute(ctx, "sys.status")
	joined := strings.Join(outcome.Entry.Output, "\n")
	for _, want := range []string{"core: online", "view: timelog", "timer: wiring", "time: 09:30:00"} {
		if !strings.Contains(joined, want) {
			t.Errorf("sys.status missing %q:\n%s", want, joined)
		}
	}
	if outcome.Entry.Classification != domain.ClassInfo {
		t.Fatalf("classification = %s, want info", outcome.Entry.Classification)
	}
}
