package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osmtools/phonelint/internal/phonediff"
)

var tagsCmd = &cobra.Command{
	Use:   "tags <old-key> <new-key>",
	Short: "Diff a tag-key rename as HTML",
	Long: `Diff a tag-key rename. Keys sharing the contact: namespace collapse
the shared prefix; otherwise the whole old key is removed and the whole new
key added.`,
	Example: `  phonelint tags contact:mobile contact:phone`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldHTML, newHTML := phonediff.DiffTagsHTML(args[0], args[1])
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "old: %s\n", oldHTML)
		fmt.Fprintf(out, "new: %s\n", newHTML)
		return nil
	},
}
