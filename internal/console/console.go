package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/pkg/clock"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// Console dispatches input lines against the collaborators and records the
// transcript. Execute is safe for concurrent callers and appends each
// command's entry atomically, but calls are not serialized against each
// other: two overlapping submissions may interleave collaborator work, and
// shared session state (active timer, theme) settles last-write-wins.
type Console struct {
	store   ports.Store
	nav     ports.Navigator
	logger  ports.Logger
	clock   clock.Clock
	session *Session

	registry *registry

	mu             sync.Mutex
	transcript     []domain.TranscriptEntry
	transcriptKeep int
}

// Options configures New.
type Options struct {
	Store       ports.Store
	Navigator   ports.Navigator
	KV          ports.KeyValue
	Logger      ports.Logger
	Clock       clock.Clock
	HistoryKeep int
	// TranscriptKeep bounds the in-memory transcript; the oldest entries
	// fall off once a session runs past it.
	TranscriptKeep int
	// DefaultTheme applies when no theme preference is persisted yet.
	DefaultTheme domain.Theme
}

// New builds a Console and rehydrates session state from the key-value
// store.
func New(opts Options) (*Console, error) {
	if opts.Store == nil || opts.Navigator == nil || opts.KV == nil || opts.Logger == nil {
		return nil, errors.New("console.New dependencies not satisfied")
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.TranscriptKeep <= 0 {
		opts.TranscriptKeep = domain.DefaultTranscriptKeep
	}
	c := &Console{
		store:          opts.Store,
		nav:            opts.Navigator,
		logger:         opts.Logger,
		clock:          opts.Clock,
		session:        NewSession(opts.KV, opts.Logger, opts.HistoryKeep, opts.DefaultTheme),
		registry:       newRegistry(),
		transcriptKeep: opts.TranscriptKeep,
	}
	c.registerNavCommands()
	c.registerTaskCommands()
	c.registerTimeCommands()
	c.registerCalendarCommands()
	c.registerNoteCommands()
	c.registerSystemCommands()
	return c, nil
}

// Outcome is the result of one dispatched line. Entry is nil when the
// command appends nothing: empty input, clear, and the full reload.
type Outcome struct {
	Entry     *domain.TranscriptEntry
	Directive Directive
}

// Execute runs one submitted line end to end: history append, parse,
// dispatch, and transcript append. Every non-empty submission lands in
// command history and resets the recall cursor, whatever its outcome.
func (c *Console) Execute(ctx context.Context, raw string) Outcome {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Outcome{}
	}

	c.session.AppendHistory(trimmed)

	id := uuid.NewString()
	tokens := Tokenize(trimmed)
	name := strings.ToLower(tokens[0])

	c.logger.Debug("dispatch", map[string]interface{}{
		"correlation_id": id,
		"command":        name,
	})

	handler, ok := c.registry.lookup(name)
	if !ok {
		line := fmt.Sprintf("%sunknown command %q. Type 'help' for the command index.", parseErrorPrefix, name)
		entry := c.newEntry(id, trimmed, []string{line}, domain.ClassError)
		c.append(entry)
		return Outcome{Entry: &entry}
	}

	positional, flags := Parse(tokens[1:])
	cmd := domain.Command{Name: name, Positional: positional, Flags: flags}

	res, err := c.run(ctx, handler, cmd)

	var entry domain.TranscriptEntry
	switch {
	case err == nil:
		class := res.Class
		if class == "" {
			class = domain.ClassSuccess
		}
		entry = c.newEntry(id, trimmed, res.Lines, class)
	case isUsageError(err):
		entry = c.newEntry(id, trimmed, []string{parseErrorPrefix + err.Error()}, domain.ClassError)
	default:
		entry = c.newEntry(id, trimmed, []string{linkErrorPrefix + err.Error()}, domain.ClassError)
	}

	switch res.Directive {
	case DirectiveClear:
		c.clearTranscript()
		return Outcome{Directive: DirectiveClear}
	case DirectiveReload:
		return Outcome{Directive: DirectiveReload}
	}

	c.append(entry)
	return Outcome{Entry: &entry}
}

// run invokes a handler with panic recovery so no command can take the
// console down.
func (c *Console) run(ctx context.Context, h *Handler, cmd domain.Command) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("handler panic", fmt.Errorf("%v", r), map[string]interface{}{"command": cmd.Name})
			res = Result{}
			err = fmt.Errorf("internal failure in %s: %v", cmd.Name, r)
		}
	}()
	return h.Run(ctx, cmd)
}

func (c *Console) newEntry(id, raw string, lines []string, class domain.Classification) domain.TranscriptEntry {
	return domain.TranscriptEntry{
		ID:             id,
		RawInput:       raw,
		Output:         lines,
		Classification: class,
		Timestamp:      c.clock.Now(),
	}
}

func (c *Console) append(entry domain.TranscriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = append(c.transcript, entry)
	if len(c.transcript) > c.transcriptKeep {
		// Reslice through a copy so the dropped head can be collected.
		kept := make([]domain.TranscriptEntry, c.transcriptKeep)
		copy(kept, c.transcript[len(c.transcript)-c.transcriptKeep:])
		c.transcript = kept
	}
}

func (c *Console) clearTranscript() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = nil
}

// Transcript returns a copy of the entries appended so far, oldest first.
func (c *Console) Transcript() []domain.TranscriptEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.TranscriptEntry, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Session exposes the session state for the surrounding shell (recall keys,
// theme, timer widget).
func (c *Console) Session() *Session {
	return c.session
}

// Theme returns the current theme preference.
func (c *Console) Theme() domain.Theme {
	return c.session.Theme()
}

// RecallPrev steps back through command history for the input line.
func (c *Console) RecallPrev() (string, bool) {
	return c.session.RecallPrev()
}

// RecallNext steps forward through command history for the input line.
func (c *Console) RecallNext() (string, bool) {
	return c.session.RecallNext()
}

// today returns the current calendar day in storage format.
func (c *Console) today() string {
	return c.clock.Now().Format(domain.DayFormat)
}
