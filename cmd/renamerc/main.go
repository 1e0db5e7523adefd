package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/commands"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the root command. The shared RootOpts is filled in by
// PersistentPreRunE, after cobra has parsed the persistent flags, so the
// --config and --debug values are the ones the user actually passed.
func newRootCmd() (*cobra.Command, *opts.RootOpts) {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "renamerc",
		Short: "A tool for renaming a project and every spelling of its name",
		Long: `renamerc copies a project directory to a new location, renaming files and
directories and rewriting every occurrence of the project name in any case
style (kebab-case, snake_case, Title Case, CONST_CASE, PascalCase, ...) to
the new name in the same style.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			resolved, err := newRootOpts(cmd.Context())
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}
			*o = *resolved

			cmd.SetContext(withUserLogger(cmd.Context(), o))
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRenameCmd(o),
		commands.NewPreviewCmd(o),
		commands.NewCasesCmd(o),
		commands.NewVersionCmd(),
	)

	return rootCmd, o
}

func main() {
	ctx := log.Logger.WithContext(context.Background())

	rootCmd, o := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if o.UserLogger != nil {
			o.UserLogger.Errorf("command failed: %v", err)
		} else {
			log.Logger.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
