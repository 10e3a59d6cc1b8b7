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

// NewInitCommand creates the init command. It writes the default
// configuration, asks for the operator handle and theme, and points at the
// next steps.
func NewInitCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize cyberdeck configuration",
		Long: `Initialize cyberdeck configuration with default settings.

This command creates ~/.cyberdeck/config.yaml, asks for an operator handle
and a console theme, and creates the data directory. Run 'cyberdeck doctor'
afterwards to verify the setup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitWizard(cmd, container, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config without prompting")

	return cmd
}

// runInitWizard runs the configuration initialization wizard
func runInitWizard(cmd *cobra.Command, container *app.Container, force bool) error {
	if container.ConfigLoader == nil {
		return fmt.Errorf(ErrConfigLoaderUnavailable)
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())
	configPath := container.ConfigLoader.Path()

	if _, err := os.Stat(configPath); err == nil && !force {
		question := fmt.Sprintf("%s exists. Overwrite?", configPath)
		if !promptYesNo(reader, out, question) {
			fmt.Fprintln(out, MsgInitCancelled)
			return nil
		}
	}

	cfg, err := container.ConfigLoader.Reset()
	if err != nil {
		return fmt.Errorf("failed to write default configuration: %w", err)
	}

	cfg = promptForPreferences(reader, out, cfg)

	if err := container.ConfigLoader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	displayCompletionInstructions(out, configPath)
	return nil
}

// promptForPreferences asks for the operator handle and console theme
func promptForPreferences(reader *bufio.Reader, out io.Writer, cfg domain.Config) domain.Config {
	fmt.Fprintln(out, "\nDeck preferences:")

	fallbackOperator := cfg.Preferences.Operator
	if fallbackOperator == "" {
		fallbackOperator = "operator"
	}
	cfg.Preferences.Operator = promptLine(reader, out, "Operator handle?", fallbackOperator)

	themes := make([]string, 0, len(domain.Themes()))
	for _, theme := range domain.Themes() {
		themes = append(themes, string(theme))
	}
	question := fmt.Sprintf("Console theme (%s)?", strings.Join(themes, "/"))
	cfg.Preferences.DefaultTheme = promptChoice(reader, out, question, cfg.Preferences.DefaultTheme, func(answer string) bool {
		_, err := domain.ParseTheme(answer)
		return err == nil
	})

	return cfg
}

// displayCompletionInstructions displays instructions after successful
// initialization
func displayCompletionInstructions(out io.Writer, configPath string) {
	fmt.Fprintf(out, "\nConfiguration initialized: %s\n\n", configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Tune the config file if the defaults do not fit:")
	fmt.Fprintf(out, "     %s\n\n", configPath)
	fmt.Fprintln(out, "  2. Verify the setup:")
	fmt.Fprintln(out, "     cyberdeck doctor")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "  3. Jack in:")
	fmt.Fprintln(out, "     cyberdeck")
}
