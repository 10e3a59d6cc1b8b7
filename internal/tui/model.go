// Package tui is the interactive deck shell: a data pane for the active
// view stacked over the console transcript and prompt. Every mutation
// flows through the console core; the shell only renders outcomes and
// polls the navigator for view switches and reload requests.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkzrv/cyberdeck/internal/app"
	"github.com/nkzrv/cyberdeck/internal/console"
	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/pkg/clock"
	"github.com/nkzrv/cyberdeck/internal/ports"
)

// NavState is the slice of the navigator the shell polls after each
// dispatched command.
type NavState interface {
	Current() domain.View
	Reloads() uint64
}

// Deps carries the collaborators the shell renders from.
type Deps struct {
	Console   *console.Console
	Store     ports.Store
	Nav       NavState
	Clipboard ports.Clipboard
	Clock     clock.Clock
}

// resultMsg carries a finished console dispatch back onto the UI loop.
type resultMsg struct {
	outcome console.Outcome
}

// paneDataMsg carries freshly loaded lines for a data pane.
type paneDataMsg struct {
	view  domain.View
	lines []string
}

// noticeFadeMsg clears the transient status bar notice.
type noticeFadeMsg struct{}

// noticeFadeDelay is how long a status notice stays visible.
const noticeFadeDelay = 2 * time.Second

// chromeRows is the fixed vertical overhead around the two content
// regions: header, pane rule, transcript rule, prompt, status bar.
const chromeRows = 5

// Model is the top-level bubbletea model for the deck shell.
type Model struct {
	ctx  context.Context
	deps Deps
	keys KeyMap
	pal  Palette

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	input      textinput.Model
	transcript viewport.Model
	spin       spinner.Model

	// transcriptText mirrors the viewport content so it survives the
	// viewport being rebuilt on the first resize.
	transcriptText string

	// busy is true while a dispatched command has not come back yet.
	busy bool

	// view and reloadGen track the navigator state the pane was last
	// rendered from.
	view      domain.View
	reloadGen uint64
	paneLines []string
	paneRows  int

	// lastOutput holds the most recent entry's output for the copy
	// shortcut.
	lastOutput []string
	notice     string
}

// NewModel builds the shell around an already-wired console.
func NewModel(ctx context.Context, deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}

	input := textinput.New()
	input.Placeholder = "type a command, help lists them all"
	input.Prompt = "> "
	input.CharLimit = 512
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		deps:      deps,
		keys:      DefaultKeyMap,
		input:     input,
		spin:      spin,
		view:      deps.Nav.Current(),
		reloadGen: deps.Nav.Reloads(),
	}
	m.applyPalette()
	m.refreshTranscript()
	return m
}

// Init implements tea.Model. Loads the starting view's data pane.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadPane(m.view))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.transcript.LineUp(3)
		case tea.MouseButtonWheelDown:
			m.transcript.LineDown(3)
		}
		return m, nil

	case resultMsg:
		return m.handleResult(msg)

	case paneDataMsg:
		// Stale loads for a view the operator already left are dropped.
		if msg.view == m.view {
			m.paneLines = msg.lines
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case noticeFadeMsg:
		m.notice = ""
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		if m.busy {
			return m.withNotice("a command is already running")
		}
		m.input.Reset()
		return m.dispatch(line)

	case key.Matches(msg, m.keys.ClearScreen):
		if m.busy {
			return m, nil
		}
		m.input.Reset()
		return m.dispatch("clear")

	case key.Matches(msg, m.keys.CopyOutput):
		return m.copyLastOutput()

	case key.Matches(msg, m.keys.RecallPrev):
		if line, ok := m.deps.Console.RecallPrev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.RecallNext):
		if line, ok := m.deps.Console.RecallNext(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.transcript.LineUp(3)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.transcript.LineDown(3)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch runs one console line off the UI goroutine and spins until
// the outcome lands.
func (m Model) dispatch(line string) (tea.Model, tea.Cmd) {
	m.busy = true
	cons := m.deps.Console
	ctx := m.ctx
	return m, tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			return resultMsg{outcome: cons.Execute(ctx, line)}
		},
	)
}

// handleResult folds a finished dispatch back into the shell: transcript
// and palette refresh, copy buffer, and a pane reload when the navigator
// moved underneath us.
func (m Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if entry := msg.outcome.Entry; entry != nil {
		m.lastOutput = entry.Output
	}
	if msg.outcome.Directive == console.DirectiveClear {
		m.lastOutput = nil
	}

	m.applyPalette()
	m.refreshTranscript()
	return m, m.syncNavigator()
}

// syncNavigator reconciles the shell with the navigator: a view switch
// swaps the data pane, a reload generation bump re-reads it.
func (m *Model) syncNavigator() tea.Cmd {
	current := m.deps.Nav.Current()
	gen := m.deps.Nav.Reloads()
	if current == m.view && gen == m.reloadGen {
		return nil
	}
	m.view = current
	m.reloadGen = gen
	return m.loadPane(current)
}

// loadPane reads the store for one view's pane content.
func (m Model) loadPane(view domain.View) tea.Cmd {
	ctx := m.ctx
	deps := m.deps
	now := deps.Clock.Now()
	return func() tea.Msg {
		return paneDataMsg{view: view, lines: paneContent(ctx, deps, view, now)}
	}
}

func (m Model) copyLastOutput() (tea.Model, tea.Cmd) {
	if len(m.lastOutput) == 0 {
		return m.withNotice("nothing to copy yet")
	}
	clip := m.deps.Clipboard
	if clip == nil || !clip.Enabled() {
		return m.withNotice("clipboard unavailable")
	}
	if err := clip.Copy(strings.Join(m.lastOutput, "\n")); err != nil {
		return m.withNotice("copy failed: " + err.Error())
	}
	return m.withNotice("output copied")
}

// withNotice shows a transient message in the status bar and schedules
// its fade.
func (m Model) withNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	return m, tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg { return noticeFadeMsg{} })
}

// applyPalette re-reads the theme preference and restyles the themed
// components. Called once at startup and after every dispatch, so a
// theme.change lands on the very next frame.
func (m *Model) applyPalette() {
	m.pal = paletteFor(m.deps.Console.Theme())
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(m.pal.Accent)
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(m.pal.FaintText)
	m.spin.Style = lipgloss.NewStyle().Foreground(m.pal.Accent)
}

// refreshTranscript rebuilds the viewport content from the console's
// transcript and pins the view to the newest entry.
func (m *Model) refreshTranscript() {
	entries := m.deps.Console.Transcript()
	prompt := lipgloss.NewStyle().Foreground(m.pal.AccentDim)

	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(prompt.Render("> " + entry.RawInput))
		style := m.classStyle(entry.Classification)
		for _, line := range entry.Output {
			b.WriteString("\n")
			b.WriteString(style.Render(line))
		}
	}
	m.transcriptText = b.String()
	if m.ready {
		m.transcript.SetContent(m.transcriptText)
		m.transcript.GotoBottom()
	}
}

func (m Model) classStyle(class domain.Classification) lipgloss.Style {
	switch class {
	case domain.ClassError:
		return lipgloss.NewStyle().Foreground(m.pal.ErrorText)
	case domain.ClassInfo:
		return lipgloss.NewStyle().Foreground(m.pal.FaintText)
	default:
		return lipgloss.NewStyle().Foreground(m.pal.NormalText)
	}
}

// layout sizes the two content regions. The pane gets two fifths of the
// space left after chrome, the transcript the rest, both floored so a
// tiny terminal degrades instead of vanishing.
func (m *Model) layout() {
	m.input.Width = m.width - 4

	avail := m.height - chromeRows
	if avail < 6 {
		avail = 6
	}
	paneRows := avail * 2 / 5
	if paneRows < 3 {
		paneRows = 3
	}
	transcriptRows := avail - paneRows
	if transcriptRows < 3 {
		transcriptRows = 3
	}
	m.paneRows = paneRows

	if !m.ready {
		m.transcript = viewport.New(m.width, transcriptRows)
		m.transcript.SetContent(m.transcriptText)
		m.transcript.GotoBottom()
		return
	}
	m.transcript.Width = m.width
	m.transcript.Height = transcriptRows
}

// Run starts the interactive shell on the current terminal and blocks
// until the operator quits.
func Run(ctx context.Context, container *app.Container) error {
	model := NewModel(ctx, Deps{
		Console:   container.Console,
		Store:     container.Store,
		Nav:       container.Nav,
		Clipboard: container.Clipboard,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
