package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

// Family groups commands for help rendering.
type Family string

const (
	FamilyNavigation Family = "navigation"
	FamilyTasks      Family = "tasks"
	FamilyTime       Family = "time"
	FamilyCalendar   Family = "calendar"
	FamilyNotes      Family = "notes"
	FamilySystem     Family = "system"
)

// families returns the display order for help output.
func families() []Family {
	return []Family{FamilyNavigation, FamilyTasks, FamilyTime, FamilyCalendar, FamilyNotes, FamilySystem}
}

// Directive asks the surrounding shell for an action beyond printing output.
type Directive int

const (
	DirectiveNone Directive = iota
	// DirectiveClear empties the transcript and the current input line.
	DirectiveClear
	// DirectiveReload asks the shell to rebuild itself from persisted state.
	DirectiveReload
)

// Result is a handler's successful output.
type Result struct {
	Lines     []string
	Class     domain.Classification // empty means success
	Directive Directive
}

// Handler describes one console command: metadata for help plus the run
// function. Run returns a usage error for violated argument requirements and
// any other error for collaborator failures; the dispatcher renders the two
// with distinct prefixes.
type Handler struct {
	Name    string
	Aliases []string
	Family  Family
	Usage   string
	Summary string
	Help    []string
	Run     func(ctx context.Context, cmd domain.Command) (Result, error)
}

// registry maps command names (and aliases) to handlers while preserving
// registration order for help output.
type registry struct {
	byName map[string]*Handler
	order  []*Handler
}

func newRegistry() *registry {
	return &registry{byName: make(map[string]*Handler)}
}

func (r *registry) add(h *Handler) {
	r.order = append(r.order, h)
	r.byName[h.Name] = h
	for _, alias := range h.Aliases {
		r.byName[alias] = h
	}
}

func (r *registry) lookup(name string) (*Handler, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// byFamily returns handlers of one family in registration order.
func (r *registry) byFamily(f Family) []*Handler {
	out := make([]*Handler, 0, len(r.order))
	for _, h := range r.order {
		if h.Family == f {
			out = append(out, h)
		}
	}
	return out
}

// usageError marks a parse-level failure: the message names the violated
// requirement and no collaborator call was attempted.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue)
}
