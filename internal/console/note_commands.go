package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

func (c *Console) registerNoteCommands() {
	c.registry.add(&Handler{
		Name:    "note.add",
		Family:  FamilyNotes,
		Usage:   "note.add <title> <content> [-t tag,tag]",
		Summary: "create a note",
		Help: []string{
			"Creates a note. The first argument is the title, everything",
			"after it becomes the content. Tags are comma separated.",
			"Example: note.add standup \"blocked on db migration\" -t work",
		},
		Run: c.cmdNoteAdd,
	})
	c.registry.add(&Handler{
		Name:    "note.search",
		Family:  FamilyNotes,
		Usage:   "note.search <keyword>",
		Summary: "search notes by keyword",
		Run:     c.cmdNoteSearch,
	})
}

func (c *Console) cmdNoteAdd(ctx context.Context, cmd domain.Command) (Result, error) {
	if len(cmd.Positional) == 0 {
		return Result{}, usageErrorf("note title required")
	}
	title := strings.ReplaceAll(cmd.Positional[0], `"`, "")
	if title == "" {
		return Result{}, usageErrorf("note title required")
	}
	content := freeText(cmd.Positional[1:])
	if content == "" {
		return Result{}, usageErrorf("note content required")
	}

	note := domain.Note{
		Title:   title,
		Content: content,
		Tags:    splitTags(cmd.Flags["tags"]),
	}
	created, err := c.store.CreateNote(ctx, note)
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{
		fmt.Sprintf("note added: [%s] %s", shortID(created.ID), created.Title),
	}}, nil
}

func (c *Console) cmdNoteSearch(ctx context.Context, cmd domain.Command) (Result, error) {
	keyword := freeText(cmd.Positional)
	if keyword == "" {
		return Result{}, usageErrorf("search keyword required")
	}

	notes, err := c.store.SearchNotes(ctx, keyword)
	if err != nil {
		return Result{}, err
	}
	if len(notes) == 0 {
		return Result{Lines: []string{fmt.Sprintf("no notes matched %q", keyword)}, Class: domain.ClassInfo}, nil
	}

	lines := make([]string, 0, len(notes))
	for i, n := range notes {
		line := fmt.Sprintf("%d. [%s] %s", i+1, shortID(n.ID), n.Title)
		if len(n.Tags) > 0 {
			line += " #" + strings.Join(n.Tags, " #")
		}
		lines = append(lines, line)
	}
	return Result{Lines: lines}, nil
}
