package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/casing"
	"gitlab.com/tozd/go/errors"
)

// NewCasesCmd creates a new cases command
func NewCasesCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "cases <name>",
		Short: "Show every case-style rendering of a name",
		Long: `Cases detects the given name and prints all 18 renderings (3 styles × 6
separator choices) that rename searches for, in the order the replacement
passes run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseInfo, normalized, err := casing.Detect(args[0])
			if err != nil {
				return errors.Errorf("detecting name: %w", err)
			}

			o.UserLogger.Infof("detected %s with parts [%s]", caseInfo, normalized)

			data := pterm.TableData{{"#", "Case", "Rendering"}}
			for i, c := range casing.AllCases() {
				rendered, err := c.Render(normalized)
				if err != nil {
					return errors.Errorf("rendering as %s: %w", c, err)
				}
				data = append(data, []string{strconv.Itoa(i + 1), c.String(), rendered})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}
