package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkzrv/cyberdeck/internal/app"
	"github.com/nkzrv/cyberdeck/internal/domain"
	"github.com/nkzrv/cyberdeck/internal/infrastructure/cli/commands"
	"github.com/nkzrv/cyberdeck/internal/tui"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running it bare jacks into the
// interactive deck; arguments are dispatched as a one-shot console command.
// Flag parsing is disabled on the dispatch paths so console flags such as
// --priority reach the console parser instead of cobra.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.Clipboard = NewClipboard()
	container.DoctorService.Clipboard = container.Clipboard

	dispatch := newDispatchRunE(container)

	root := &cobra.Command{
		Use:                "cyberdeck [console command]",
		Short:              "CYBERDECK - a neon productivity deck",
		Long:               "CYBERDECK keeps todos, tracked time, calendar events, and notes behind an embedded command console.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return tui.Run(cmd.Context(), container)
			}
			if isHelpArg(args[0]) {
				return cmd.Help()
			}
			return dispatch(cmd, args)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newExecCommand(dispatch))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewStateCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewInitCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func newExecCommand(dispatch func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <console command>",
		Short: "Run one console command and exit",
		Example: `  cyberdeck exec todo.add Ship the report --priority high
  cyberdeck exec time.start deep work
  cyberdeck exec sys.status`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isHelpArg(args[0]) {
				return cmd.Help()
			}
			return dispatch(cmd, args)
		},
	}
}

// newDispatchRunE runs one raw console line and renders the outcome. A
// command that failed inside the console still exits nonzero even though the
// ERROR line already went to stdout.
func newDispatchRunE(container *app.Container) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		outcome := container.Console.Execute(cmd.Context(), strings.Join(args, " "))
		RenderOutcome(cmd.OutOrStdout(), outcome)
		if outcome.Entry != nil && outcome.Entry.Classification == domain.ClassError {
			return fmt.Errorf("command failed")
		}
		return nil
	}
}

// isHelpArg spots a leading help flag that would otherwise be handed to the
// console parser, since flag parsing is off on the dispatch paths.
func isHelpArg(arg string) bool {
	return arg == "--help" || arg == "-h"
}
