package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

func (c *Console) registerSystemCommands() {
	c.registry.add(&Handler{
		Name:    "help",
		Family:  FamilySystem,
		Usage:   "help [command]",
		Summary: "list commands or show one in detail",
		Run:     c.cmdHelp,
	})
	c.registry.add(&Handler{
		Name:    "history",
		Family:  FamilySystem,
		Usage:   "history",
		Summary: "show recent submissions",
		Run:     c.cmdHistory,
	})
	c.registry.add(&Handler{
		Name:    "clear",
		Family:  FamilySystem,
		Usage:   "clear",
		Summary: "wipe the transcript",
		Run: func(ctx context.Context, cmd domain.Command) (Result, error) {
			return Result{Directive: DirectiveClear}, nil
		},
	})
	c.registry.add(&Handler{
		Name:    "theme.change",
		Family:  FamilySystem,
		Usage:   "theme.change <green|purple|red|black>",
		Summary: "switch the color scheme",
		Run:     c.cmdThemeChange,
	})
	c.registry.add(&Handler{
		Name:    "sys.status",
		Family:  FamilySystem,
		Usage:   "sys.status",
		Summary: "report console status",
		Run:     c.cmdSysStatus,
	})
}

func (c *Console) cmdHelp(ctx context.Context, cmd domain.Command) (Result, error) {
	if len(cmd.Positional) > 0 {
		return c.helpFor(cmd.Positional[0])
	}

	lines := []string{"available commands"}
	for _, fam := range families() {
		handlers := c.registry.byFamily(fam)
		if len(handlers) == 0 {
			continue
		}
		lines = append(lines, "", string(fam)+":")
		for _, h := range handlers {
			lines = append(lines, fmt.Sprintf("  %-36s %s", h.Usage, h.Summary))
		}
	}
	lines = append(lines, "", "help <command> shows details")
	return Result{Lines: lines, Class: domain.ClassInfo}, nil
}

func (c *Console) helpFor(name string) (Result, error) {
	h, ok := c.registry.lookup(strings.ToLower(name))
	if !ok || len(h.Help) == 0 {
		return Result{Lines: []string{fmt.Sprintf("no help available for %q", name)}, Class: domain.ClassInfo}, nil
	}

	lines := []string{h.Usage, h.Summary, ""}
	lines = append(lines, h.Help...)
	if len(h.Aliases) > 0 {
		lines = append(lines, "", "aliases: "+strings.Join(h.Aliases, ", "))
	}
	return Result{Lines: lines, Class: domain.ClassInfo}, nil
}

// cmdHistory lists the most recent submissions with their absolute position
// in the session history, so the numbering stays stable as the list grows.
func (c *Console) cmdHistory(ctx context.Context, cmd domain.Command) (Result, error) {
	all := c.session.History()
	if len(all) == 0 {
		return Result{Lines: []string{"history is empty"}, Class: domain.ClassInfo}, nil
	}

	start := 0
	if len(all) > domain.HistoryDisplayCount {
		start = len(all) - domain.HistoryDisplayCount
	}
	lines := make([]string, 0, len(all)-start)
	for i := start; i < len(all); i++ {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, all[i]))
	}
	return Result{Lines: lines, Class: domain.ClassInfo}, nil
}

func (c *Console) cmdThemeChange(ctx context.Context, cmd domain.Command) (Result, error) {
	if len(cmd.Positional) == 0 {
		return Result{}, usageErrorf("theme required, one of green, purple, red, black")
	}
	theme, err := domain.ParseTheme(cmd.Positional[0])
	if err != nil {
		return Result{}, usageErrorf("theme must be one of green, purple, red, black")
	}
	if err := c.session.SetTheme(theme); err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{fmt.Sprintf("theme set: %s", theme)}}, nil
}

func (c *Console) cmdSysStatus(ctx context.Context, cmd domain.Command) (Result, error) {
	now := c.clock.Now()

	timerLine := "timer: idle"
	if timer, running := c.session.Timer(); running {
		timerLine = fmt.Sprintf("timer: %s (%d min)", timer.Activity, timer.ElapsedMinutes(now))
	}

	return Result{Lines: []string{
		"core: online",
		"link: online",
		fmt.Sprintf("view: %s", c.nav.Current()),
		timerLine,
		fmt.Sprintf("time: %s", now.Format("15:04:05")),
	}, Class: domain.ClassInfo}, nil
}
