package console

import (
	"context"
	"fmt"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

// navTargets pairs each navigation command suffix with its view. nav.tasks
// is accepted alongside nav.todos because both names stuck in usage.
var navTargets = []struct {
	suffix  string
	extra   []string
	view    domain.View
	summary string
}{
	{suffix: "dashboard", view: domain.ViewDashboard, summary: "open the dashboard"},
	{suffix: "todos", extra: []string{"nav.tasks", "goto.tasks"}, view: domain.ViewTodos, summary: "open the todo board"},
	{suffix: "timelog", view: domain.ViewTimelog, summary: "open the time log"},
	{suffix: "calendar", view: domain.ViewCalendar, summary: "open the calendar"},
	{suffix: "notes", view: domain.ViewNotes, summary: "open the notes view"},
}

func (c *Console) registerNavCommands() {
	for _, target := range navTargets {
		view := target.view
		aliases := append([]string{"goto." + target.suffix}, target.extra...)
		c.registry.add(&Handler{
			Name:    "nav." + target.suffix,
			Aliases: aliases,
			Family:  FamilyNavigation,
			Usage:   "nav." + target.suffix,
			Summary: target.summary,
			Run: func(ctx context.Context, cmd domain.Command) (Result, error) {
				return c.cmdNavigate(view)
			},
		})
	}

	c.registry.add(&Handler{
		Name:    "nav.back",
		Family:  FamilyNavigation,
		Usage:   "nav.back",
		Summary: "return to the previous view",
		Help: []string{
			"Pops the most recent view off the navigation stack and switches",
			"to it. Errors when no navigation has happened yet.",
		},
		Run: func(ctx context.Context, cmd domain.Command) (Result, error) {
			return c.cmdNavBack()
		},
	})

	c.registry.add(&Handler{
		Name:    "sys.reload",
		Family:  FamilyNavigation,
		Usage:   "sys.reload",
		Summary: "reload the interface from persisted state",
		Run: func(ctx context.Context, cmd domain.Command) (Result, error) {
			c.nav.Reload()
			return Result{Directive: DirectiveReload}, nil
		},
	})
}

// cmdNavigate pushes the prior view, then switches. The push happens first,
// so a failed switch leaves the prior view on the stack.
func (c *Console) cmdNavigate(view domain.View) (Result, error) {
	c.session.PushView(c.nav.Current())
	if err := c.nav.GoTo(view); err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{fmt.Sprintf("view: %s", view)}}, nil
}

func (c *Console) cmdNavBack() (Result, error) {
	prior, ok := c.session.PopView()
	if !ok {
		return Result{}, usageErrorf("navigation stack is empty, nowhere to go back to")
	}
	if err := c.nav.GoTo(prior); err != nil {
		return Result{}, err
	}
	return Result{Lines: []string{fmt.Sprintf("view: %s", prior)}}, nil
}
