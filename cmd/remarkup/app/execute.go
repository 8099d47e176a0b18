package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/addaleax/remarkup/internal/cmd/globals"
	"github.com/addaleax/remarkup/pkg/logging"
)

const rootDescription = `Remarkup prepares HTML fragments for human editing and merges the
edits back afterwards.

unmark strips the attributes that would only get in an editor's way,
and remark reconciles the edited fragment against the original,
re-attaching the stripped attributes to the elements they most likely
belong to even when the edit moved, added, or removed elements.`

// Execute parses args and runs the selected command under ctx.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand assembles the root command, its persistent flags, and
// every subcommand.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "remarkup",
		Short:             "Strip and re-attach HTML attributes around human edits",
		Long:              rootDescription,
		Version:           a.version,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.SetVersionTemplate("remarkup {{.Version}}\n")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})

	a.flags = globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.remarkup.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "reconciliation profile (YAML file)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.AddCommand(
		a.NewUnmarkCommand(),
		a.NewRemarkCommand(),
		a.NewInspectCommand(),
		a.NewVersionCommand(),
	)

	return rootCmd
}

// setup runs before every command: parsed flags fold into the config, and
// the logger is rebuilt so the command sees the final verbosity and format.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	profilePath, err := cmd.Flags().GetString("profile")
	if err != nil {
		return err
	}

	a.config.UpdateFromFlags(a.flags.Verbose, a.flags.Quiet, a.flags.NoColor, a.flags.Format, logLevel, profilePath)

	logger := NewLogger(a.config)
	a.logger = &logger

	// Library calls pick the logger up from the command context
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	return nil
}
