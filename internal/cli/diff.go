package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osmtools/phonelint/internal/phonediff"
)

var diffHTML bool

var diffCmd = &cobra.Command{
	Use:   "diff <original> <suggested>",
	Short: "Diff a raw field value against a suggested replacement",
	Long: `Diff a raw phone-number field value against a suggested replacement.
Digits shared by both values are shown unchanged even when reformatting moved
them; removed and added characters are highlighted. Pass an empty string for
either side to show a pure removal or addition.`,
	Example: `  phonelint diff '023 456 7890' '+37 23 456 7890'
  phonelint diff --html '+32 58 515 592;+32 0473 792 951' '+32 58 51 55 92; +32 473 79 29 51'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := separatorProfile(cmd, cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if diffHTML {
			oldHTML, newHTML := phonediff.DiffHTML(args[0], args[1], p)
			fmt.Fprintf(out, "old: %s\n", oldHTML)
			fmt.Fprintf(out, "new: %s\n", newHTML)
			return nil
		}

		applyColorMode(cmd)
		oldRuns, newRuns := phonediff.DiffValues(args[0], args[1], p)
		fmt.Fprintf(out, "old: %s\n", phonediff.RenderTerm(oldRuns))
		fmt.Fprintf(out, "new: %s\n", phonediff.RenderTerm(newRuns))
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffHTML, "html", false, "emit HTML span markup instead of terminal colors")
}
