package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
)

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(o *opts.RootOpts) *cobra.Command {
	flags := &renameFlags{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show what rename would do without writing anything",
		Long: `Preview walks the project exactly like rename does and logs every planned
operation, but never touches the filesystem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd.Context(), o, flags, true)
		},
	}

	flags.register(cmd)
	return cmd
}
