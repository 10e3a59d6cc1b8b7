package nav

import (
	"fmt"
	"sync"

	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// Local tracks the active view in process memory. The interactive shell polls
// Current and Reloads after each dispatched command, so navigation never
// blocks on a listener.
type Local struct {
	mu      sync.Mutex
	current domain.View
	reloads uint64
}

// NewLocal starts on the given view, falling back to the dashboard.
func NewLocal(start domain.View) *Local {
	if start == "" {
		start = domain.ViewDashboard
	}
	return &Local{current: start}
}

// GoTo switches the active view.
func (l *Local) GoTo(view domain.View) error {
	if !knownView(view) {
		return fmt.Errorf("unknown view %q", view)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.current = view
	return nil
}

// Current reports the active view.
func (l *Local) Current() domain.View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Reload bumps the reload generation. The shell rebuilds its widgets from
// persisted state whenever the generation moves.
func (l *Local) Reload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reloads++
}

// Reloads reports the reload generation counter.
func (l *Local) Reloads() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reloads
}

func knownView(view domain.View) bool {
	for _, v := range domain.Views() {
		if v == view {
			return true
		}
	}
	return false
}

var _ ports.Navigator = (*Local)(nil)
