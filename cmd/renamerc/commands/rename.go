package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/casing"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/walker"
	"gitlab.com/tozd/go/errors"
)

// renameFlags holds the per-command flags shared by rename and preview
type renameFlags struct {
	input       string
	name        string
	destination string
	async       bool
}

func (f *renameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "path to the project to rename (e.g. path/to/old-project)")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "new name of the project (e.g. new-project)")
	cmd.Flags().StringVar(&f.destination, "destination", "", "override destination path")
	cmd.Flags().BoolVar(&f.async, "async", false, "process files concurrently")
}

// NewRenameCmd creates a new rename command
func NewRenameCmd(o *opts.RootOpts) *cobra.Command {
	flags := &renameFlags{}
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Copy a project to a new location under a new name",
		Long: `Rename copies the project directory to a sibling directory named after the
new name. Every file and directory entry is renamed, and every text file has
all case-style spellings of the old project name rewritten to the new name in
the same style. Non-UTF-8 files are copied byte-for-byte.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd.Context(), o, flags, false)
		},
	}

	flags.register(cmd)
	return cmd
}

// runRename resolves flags against the config file and executes the walk
func runRename(ctx context.Context, o *opts.RootOpts, flags *renameFlags, dryRun bool) error {
	input := flags.input
	if input == "" {
		input = o.Config.Input
	}
	if input == "" {
		return errors.New("input is required (set --input or the config file)")
	}

	newName := flags.name
	if newName == "" {
		newName = o.Config.NewName
	}
	if newName == "" {
		return errors.New("name is required (set --name or the config file)")
	}

	absInput, err := filepath.Abs(input)
	if err != nil {
		return errors.Errorf("resolving input path: %w", err)
	}

	// The old project name is the input directory's basename
	_, oldNormalized, err := casing.Detect(filepath.Base(absInput))
	if err != nil {
		return errors.Errorf("detecting old project name: %w", err)
	}
	_, newNormalized, err := casing.Detect(newName)
	if err != nil {
		return errors.Errorf("detecting new project name: %w", err)
	}

	destination := flags.destination
	if destination == "" {
		destination = o.Config.Destination
	}
	if destination == "" {
		destination = filepath.Join(filepath.Dir(absInput), newName)
	}

	w, err := walker.New(walker.Options{
		Source:         absInput,
		Destination:    destination,
		OldName:        oldNormalized,
		NewName:        newNormalized,
		IgnorePatterns: o.Config.IgnorePatterns,
		DryRun:         dryRun,
		Async:          flags.async || o.Config.Async,
	})
	if err != nil {
		return errors.Errorf("preparing walker: %w", err)
	}

	o.UserLogger.StartRenameOperation(ctx, log.RenameOperation{
		OldName:     filepath.Base(absInput),
		NewName:     newName,
		Source:      absInput,
		Destination: destination,
		DryRun:      dryRun,
	})

	summary, err := w.Run(ctx)
	if err != nil {
		return errors.Errorf("renaming project: %w", err)
	}

	o.UserLogger.EndRenameOperation(ctx)
	o.UserLogger.LogNewline()
	o.UserLogger.Success(formatSummary(summary, dryRun))

	return nil
}

// formatSummary renders a one-line walk summary
func formatSummary(s *walker.Summary, dryRun bool) string {
	verb := "processed"
	if dryRun {
		verb = "would process"
	}
	return fmt.Sprintf("%s %d directories, %d text files (%d replacements), %d raw copies, %d skipped",
		verb, s.Directories, s.Rewritten, s.Replacements, s.RawCopies, s.Skipped)
}
