package console

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// Session state keys in the key-value store.
const (
	keyTheme   = domain.StateKeyTheme
	keyTimer   = domain.StateKeyTimer
	keyHistory = domain.StateKeyHistory
)

// Session holds the cross-command state that outlives a single dispatch:
// command history with its recall cursor, the active timer, the theme
// preference, and the navigation history stack. Theme, timer, and a bounded
// history tail persist through the key-value collaborator; the navigation
// stack lives only as long as the process.
//
// Individual methods are safe for concurrent use, but timer and theme
// updates are read-modify-write without a transaction: two overlapping
// commands settle last-write-wins on the persisted value.
type Session struct {
	kv     ports.KeyValue
	logger ports.Logger
	keep   int

	mu       sync.Mutex
	history  []string
	cursor   int
	timer    *domain.ActiveTimer
	theme    domain.Theme
	navStack []domain.View
}

// NewSession rehydrates session state from the key-value store. Missing or
// corrupt values degrade to the fallback theme and empty state rather than
// failing startup.
func NewSession(kv ports.KeyValue, logger ports.Logger, keep int, fallback domain.Theme) *Session {
	if keep <= 0 {
		keep = domain.DefaultHistoryKeep
	}
	if fallback == "" {
		fallback = domain.DefaultTheme
	}
	s := &Session{
		kv:     kv,
		logger: logger,
		keep:   keep,
		cursor: -1,
		theme:  fallback,
	}
	s.rehydrate()
	return s
}

func (s *Session) rehydrate() {
	if raw, ok, err := s.kv.Get(keyTheme); err == nil && ok {
		if theme, perr := domain.ParseTheme(raw); perr == nil {
			s.theme = theme
		} else {
			s.logger.Debug("ignoring stored theme", map[string]interface{}{"value": raw})
		}
	}

	if raw, ok, err := s.kv.Get(keyTimer); err == nil && ok {
		var timer domain.ActiveTimer
		if uerr := json.Unmarshal([]byte(raw), &timer); uerr == nil && timer.Activity != "" && !timer.StartedAt.IsZero() {
			s.timer = &timer
		} else {
			s.logger.Debug("ignoring stored timer", map[string]interface{}{"value": raw})
		}
	}

	if raw, ok, err := s.kv.Get(keyHistory); err == nil && ok {
		var lines []string
		if uerr := json.Unmarshal([]byte(raw), &lines); uerr == nil {
			s.history = lines
		} else {
			s.logger.Debug("ignoring stored history", map[string]interface{}{"error": uerr.Error()})
		}
	}
}

// AppendHistory records a submitted line and resets the recall cursor. The
// persisted tail is bounded; persistence failures are logged, not surfaced,
// so a broken state file never blocks command dispatch.
func (s *Session) AppendHistory(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, raw)
	s.cursor = -1

	tail := s.history
	if len(tail) > s.keep {
		tail = tail[len(tail)-s.keep:]
	}
	data, err := json.Marshal(tail)
	if err == nil {
		err = s.kv.Set(keyHistory, string(data))
	}
	if err != nil {
		s.logger.Warn("persist history failed", map[string]interface{}{"error": err.Error()})
	}
}

// RecallPrev moves the cursor one step back through history and returns the
// line to place in the input. The second return is false when history is
// empty and the input should stay untouched.
func (s *Session) RecallPrev() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return "", false
	}
	if s.cursor == -1 {
		s.cursor = len(s.history) - 1
	} else if s.cursor > 0 {
		s.cursor--
	}
	return s.history[s.cursor], true
}

// RecallNext moves the cursor one step forward. Stepping past the newest
// entry leaves browsing mode and clears the input (returns "", true). When
// not browsing at all it returns ("", false) and the input stays untouched.
func (s *Session) RecallNext() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == -1 {
		return "", false
	}
	s.cursor++
	if s.cursor >= len(s.history) {
		s.cursor = -1
		return "", true
	}
	return s.history[s.cursor], true
}

// History returns a copy of the full in-memory history, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Cursor reports the recall cursor position, -1 when not browsing.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Timer returns the active timer, if one is running.
func (s *Session) Timer() (domain.ActiveTimer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil {
		return domain.ActiveTimer{}, false
	}
	return *s.timer, true
}

// SetTimer persists and installs a new active timer, replacing any current
// one. Memory is only updated once the value is durably stored.
func (s *Session) SetTimer(timer domain.ActiveTimer) error {
	data, err := json.Marshal(timer)
	if err != nil {
		return fmt.Errorf("encode timer: %w", err)
	}
	if err := s.kv.Set(keyTimer, string(data)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = &timer
	return nil
}

// ClearTimer removes the active timer from storage and memory.
func (s *Session) ClearTimer() error {
	if err := s.kv.Remove(keyTimer); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = nil
	return nil
}

// Theme returns the current theme preference.
func (s *Session) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme persists and installs a theme preference.
func (s *Session) SetTheme(theme domain.Theme) error {
	if err := s.kv.Set(keyTheme, string(theme)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

// PushView records the view active before a navigation command.
func (s *Session) PushView(view domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navStack = append(s.navStack, view)
}

// PopView removes and returns the most recently pushed view.
func (s *Session) PopView() (domain.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.navStack) == 0 {
		return "", false
	}
	view := s.navStack[len(s.navStack)-1]
	s.navStack = s.navStack[:len(s.navStack)-1]
	return view, true
}
