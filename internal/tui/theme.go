package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

// Palette is the color set for one console theme. All colors are ANSI
// 256 codes so the deck renders the same over SSH and inside tmux.
type Palette struct {
	// Accent carries the theme identity: the header bar, the prompt,
	// pane rules, and the active view tab.
	Accent    lipgloss.Color
	AccentDim lipgloss.Color

	// Transcript and pane text.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Error-classified transcript lines. Red in every palette; an
	// unreadable failure is worse than an off-theme one.
	ErrorText lipgloss.Color

	// Header bar text, drawn on the accent background.
	HeaderForeground lipgloss.Color

	// Status bar.
	StatusBackground lipgloss.Color
	StatusForeground lipgloss.Color
}

var palettes = map[domain.Theme]Palette{
	domain.ThemeGreen: {
		Accent:           lipgloss.Color("46"), // phosphor green
		AccentDim:        lipgloss.Color("29"),
		NormalText:       lipgloss.Color("252"),
		FaintText:        lipgloss.Color("243"),
		ErrorText:        lipgloss.Color("196"),
		HeaderForeground: lipgloss.Color("16"),
		StatusBackground: lipgloss.Color("236"),
		StatusForeground: lipgloss.Color("250"),
	},
	domain.ThemePurple: {
		Accent:           lipgloss.Color("135"), // neon violet
		AccentDim:        lipgloss.Color("97"),
		NormalText:       lipgloss.Color("252"),
		FaintText:        lipgloss.Color("243"),
		ErrorText:        lipgloss.Color("196"),
		HeaderForeground: lipgloss.Color("255"),
		StatusBackground: lipgloss.Color("236"),
		StatusForeground: lipgloss.Color("250"),
	},
	domain.ThemeRed: {
		Accent:           lipgloss.Color("196"), // alert red
		AccentDim:        lipgloss.Color("124"),
		NormalText:       lipgloss.Color("252"),
		FaintText:        lipgloss.Color("243"),
		ErrorText:        lipgloss.Color("208"), // orange, so failures still stand out
		HeaderForeground: lipgloss.Color("255"),
		StatusBackground: lipgloss.Color("236"),
		StatusForeground: lipgloss.Color("250"),
	},
	domain.ThemeBlack: {
		Accent:           lipgloss.Color("255"), // monochrome
		AccentDim:        lipgloss.Color("240"),
		NormalText:       lipgloss.Color("250"),
		FaintText:        lipgloss.Color("241"),
		ErrorText:        lipgloss.Color("196"),
		HeaderForeground: lipgloss.Color("16"),
		StatusBackground: lipgloss.Color("234"),
		StatusForeground: lipgloss.Color("245"),
	},
}

// paletteFor returns the palette for a theme, falling back to the default
// theme's palette for anything unrecognized.
func paletteFor(theme domain.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[domain.DefaultTheme]
}
