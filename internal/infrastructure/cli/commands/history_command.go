package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkzrv/cyberdeck/internal/app"
	"github.com/nkzrv/cyberdeck/internal/domain"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect console command history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryLines(cmd.OutOrStdout(), container, DefaultHistoryLimit)
		},
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent console submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryLines(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max lines to show")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the persisted history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.State == nil {
				return fmt.Errorf(ErrStateStoreUnavailable)
			}
			if !yes {
				reader := bufio.NewReader(cmd.InOrStdin())
				if !promptYesNo(reader, cmd.OutOrStdout(), "Forget all persisted command history?") {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := container.State.Remove(domain.StateKeyHistory); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history lines to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportHistoryLines(container, args[0])
		},
	}
}

// listHistoryLines prints recent console submissions, oldest first
func listHistoryLines(out io.Writer, container *app.Container, limit int) error {
	if container.Console == nil {
		return fmt.Errorf(ErrConsoleUnavailable)
	}

	lines := container.Console.Session().History()
	if len(lines) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	start := 0
	if limit > 0 && len(lines) > limit {
		start = len(lines) - limit
	}
	for i := start; i < len(lines); i++ {
		fmt.Fprintf(out, "%d. %s\n", i+1, lines[i])
	}
	return nil
}

// exportHistoryLines writes history to a plain text file, one line each
func exportHistoryLines(container *app.Container, path string) error {
	if container.Console == nil {
		return fmt.Errorf(ErrConsoleUnavailable)
	}

	lines := container.Console.Session().History()
	data := strings.Join(lines, "\n")
	if len(lines) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), domain.SecureFilePermissions); err != nil {
		return fmt.Errorf("failed to export history to %s: %w", path, err)
	}
	return nil
}
