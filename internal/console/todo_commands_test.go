package console

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

func TestTodoAddPersistsSuppliedPriority(t *testing.T) {
	for _, priority := range []string{"low", "medium", "high"} {
		t.Run(priority, func(t *testing.T) {
			c, store, _, _, _ := newTestConsole(t)

			outcome := c.Execute(context.Background(), fmt.Sprintf("todo.add patch firmware -p %s", priority))
			if outcome.Entry.Classification != domain.ClassSuccess {
				t.Fatalf("classification = %s, output %v", outcome.Entry.Classification, outcome.Entry.Output)
			}
			if len(store.tasks) != 1 {
				t.Fatalf("tasks persisted = %d, want 1", len(store.tasks))
			}
			if got := string(store.tasks[0].Priority); got != priority {
				t.Fatalf("persisted priority = %q, want %q", got, priority)
			}
		})
	}
}

func TestTodoAddDefaultsToMediumPriority(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)

	c.Execute(context.Background(), "todo.add patch firmware")
	if len(store.tasks) != 1 {
		t.Fatalf("tasks persisted = %d, want 1", len(store.tasks))
	}
	if store.tasks[0].Priority != domain.PriorityMedium {
		t.Fatalf("priority = %s, want medium", store.tasks[0].Priority)
	}
}

func TestTodoAddStripsQuotesFromJoinedText(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), `todo.add "Ship release" -p high`)
	if outcome.Entry.Classification != domain.ClassSuccess {
		t.Fatalf("classification = %s, output %v", outcome.Entry.Classification, outcome.Entry.Output)
	}
	if got := store.tasks[0].Text; got != "Ship release" {
		t.Fatalf("task text = %q, want %q", got, "Ship release")
	}
	if store.tasks[0].Priority != domain.PriorityHigh {
		t.Fatalf("priority = %s, want high", store.tasks[0].Priority)
	}
}

func TestTodoAddRejectsUnknownPriority(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "todo.add fix antenna -p urgent")
	if outcome.Entry.Classification != domain.ClassError {
		t.Fatalf("classification = %s, want error", outcome.Entry.Classification)
	}
	if !strings.Contains(outcome.Entry.Output[0], "low, medium, high") {
		t.Fatalf("error should list valid priorities, got %v", outcome.Entry.Output)
	}
	if len(store.tasks) != 0 {
		t.Fatal("no task should be persisted on a parse error")
	}
}

func TestTodoListRendersNumberedEntries(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)
	ctx := context.Background()

	c.Execute(ctx, "todo.add write report -p high")
	c.Execute(ctx, "todo.add water plants -p low")
	done := true
	if err := store.UpdateTask(ctx, store.tasks[0].ID, ports.TaskPatch{Completed: &done}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	outcome := c.Execute(ctx, "todo.list")
	lines := outcome.Entry.Output
	if len(lines) != 2 {
		t.Fatalf("list lines = %d, want 2: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "1. [x] write report [HIGH] ") {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2. [ ] water plants [LOW] ") {
		t.Fatalf("line 2 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[0], shortID(store.tasks[0].ID)) {
		t.Fatalf("line 1 should end with the short id, got %q", lines[0])
	}
}

func TestTodoListFiltersByPriority(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)
	ctx := context.Background()

	c.Execute(ctx, "todo.add write report -p high")
	c.Execute(ctx, "todo.add water plants -p low")

	outcome := c.Execute(ctx, "todo.list -p high")
	if len(outcome.Entry.Output) != 1 || !strings.Contains(outcome.Entry.Output[0], "write report") {
		t.Fatalf("filtered list = %v", outcome.Entry.Output)
	}
}

func TestTodoListEmptyIsInformational(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "todo.list")
	if outcome.Entry.Classification != domain.ClassInfo {
		t.Fatalf("classification = %s, want info", outcome.Entry.Classification)
	}
}

func TestTodoCompleteRequiresID(t *testing.T) {
	c, _, _, _, _ := newTestConsole(t)

	outcome := c.Execute(context.Background(), "todo.complete")
	if outcome.Entry.Classification != domain.ClassError {
		t.Fatalf("classification = %s, want error", outcome.Entry.Classification)
	}
	if !strings.Contains(outcome.Entry.Output[0], "task id") {
		t.Fatalf("error should cite the missing id, got %v", outcome.Entry.Output)
	}
}

func TestTodoCompleteSurfacesStoreErrorVerbatim(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)
	store.err = fmt.Errorf("task 42 not found")

	outcome := c.Execute(context.Background(), "todo.complete 42")
	if got := outcome.Entry.Output[0]; got != "LINK ERROR: task 42 not found" {
		t.Fatalf("output = %q", got)
	}
}

func TestTodoDeleteRemovesTask(t *testing.T) {
	c, store, _, _, _ := newTestConsole(t)
	ctx := context.Background()

	c.Execute(ctx, "todo.add disposable")
	id := store.tasks[0].ID

	outcome := c.Execute(ctx, "todo.delete "+id)
	if outcome.Entry.Classification != domain.ClassSuccess {
		t.Fatalf("classification = %s, output %v", outcome.Entry.Classification, outcome.Entry.Output)
	}
	if len(store.tasks) != 0 {
		t.Fatalf("tasks remaining = %d, want 0", len(store.tasks))
	}
}
