package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

func (c *Console) registerTaskCommands() {
	c.registry.add(&Handler{
		Name:    "todo.add",
		Family:  FamilyTasks,
		Usage:   "todo.add <text> [-p low|medium|high]",
		Summary: "create a task",
		Help: []string{
			"Creates a task from the given text. The priority flag accepts",
			"low, medium, or high and defaults to medium.",
			"Example: todo.add \"Ship release\" -p high",
		},
		Run: c.cmdTodoAdd,
	})
	c.registry.add(&Handler{
		Name:    "todo.list",
		Family:  FamilyTasks,
		Usage:   "todo.list [-p low|medium|high]",
		Summary: "list tasks, optionally by priority",
		Run:     c.cmdTodoList,
	})
	c.registry.add(&Handler{
		Name:    "todo.complete",
		Family:  FamilyTasks,
		Usage:   "todo.complete <id>",
		Summary: "mark a task done",
		Help: []string{
			"Marks the task with the given id as completed. A unique id",
			"prefix of at least four characters also works.",
		},
		Run: c.cmdTodoComplete,
	})
	c.registry.add(&Handler{
		Name:    "todo.delete",
		Family:  FamilyTasks,
		Usage:   "todo.delete <id>",
		Summary: "delete a task",
		Run:     c.cmdTodoDelete,
	})
}

func (c *Console) cmdTodoAdd(ctx context.Context, cmd domain.Command) (Result, error) {
	text := freeText(cmd.Positional)
	if text == "" {
		return Result{}, usageErrorf("task description required")
	}

	priority := domain.DefaultPriority
	if raw, ok := cmd.Flags["priority"]; ok {
		parsed, err := domain.ParsePriority(raw)
		if err != nil {
			return Result{}, usageErrorf("priority must be one of low, medium, high")
		}
		priority = parsed
	}

	created, err := c.store.CreateTask(ctx, domain.Task{Text: text, Priority: priority})
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{
		fmt.Sprintf("task added: [%s] %s (%s)", shortID(created.ID), created.Text, created.Priority),
	}}, nil
}

func (c *Console) cmdTodoList(ctx context.Context, cmd domain.Command) (Result, error) {
	var filter ports.TaskFilter
	if raw, ok := cmd.Flags["priority"]; ok {
		parsed, err := domain.ParsePriority(raw)
		if err != nil {
			return Result{}, usageErrorf("priority must be one of low, medium, high")
		}
		filter.Priority = parsed
	}

	tasks, err := c.store.ListTasks(ctx, filter)
	if err != nil {
		return Result{}, err
	}
	if len(tasks) == 0 {
		return Result{Lines: []string{"no tasks found"}, Class: domain.ClassInfo}, nil
	}

	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s %s [%s] %s",
			i+1,
			completionGlyph(task.Completed),
			task.Text,
			strings.ToUpper(string(task.Priority)),
			shortID(task.ID),
		))
	}
	return Result{Lines: lines}, nil
}

func (c *Console) cmdTodoComplete(ctx context.Context, cmd domain.Command) (Result, error) {
	if len(cmd.Positional) == 0 {
		return Result{}, usageErrorf("task id required")
	}
	id := cmd.Positional[0]

	done := true
	if err := c.store.UpdateTask(ctx, id, ports.TaskPatch{Completed: &done}); err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{fmt.Sprintf("task completed: %s", id)}}, nil
}

func (c *Console) cmdTodoDelete(ctx context.Context, cmd domain.Command) (Result, error) {
	if len(cmd.Positional) == 0 {
		return Result{}, usageErrorf("task id required")
	}
	id := cmd.Positional[0]

	if err := c.store.DeleteTask(ctx, id); err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{fmt.Sprintf("task deleted: %s", id)}}, nil
}
