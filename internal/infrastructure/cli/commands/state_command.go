package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nkzrv/cyberdeck/internal/app"
)

// NewStateCommand creates the state command with all subcommands
func NewStateCommand(container *app.Container) *cobra.Command {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect persisted session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSessionState(cmd.OutOrStdout(), container)
		},
	}

	stateCmd.AddCommand(
		newStateShowCommand(container),
		newStatePathCommand(container),
		newStateClearCommand(container),
	)

	return stateCmd
}

// newStateShowCommand creates the 'state show' subcommand
func newStateShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all persisted keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSessionState(cmd.OutOrStdout(), container)
		},
	}
}

// newStatePathCommand creates the 'state path' subcommand
func newStatePathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the state file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.State == nil {
				return fmt.Errorf(ErrStateStoreUnavailable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), container.State.Path())
			return nil
		},
	}
}

// newStateClearCommand creates the 'state clear' subcommand
func newStateClearCommand(container *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the state file (theme, timer, history)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.State == nil {
				return fmt.Errorf(ErrStateStoreUnavailable)
			}
			if !yes {
				reader := bufio.NewReader(cmd.InOrStdin())
				if !promptYesNo(reader, cmd.OutOrStdout(), "Delete all session state, including the active timer?") {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := container.State.Clear(); err != nil {
				return fmt.Errorf("failed to clear state: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session state cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// showSessionState lists the persisted state document
func showSessionState(out io.Writer, container *app.Container) error {
	if container.State == nil {
		return fmt.Errorf(ErrStateStoreUnavailable)
	}

	entries, keys, err := container.State.Entries()
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	if len(keys) == 0 {
		fmt.Fprintln(out, MsgStateEmpty)
		return nil
	}
	for _, key := range keys {
		fmt.Fprintf(out, "%s = %s\n", key, entries[key])
	}
	return nil
}
