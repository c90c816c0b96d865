// Package cli implements the phonelint command tree.
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is the phonelint version. It is a var (not a const) so build tooling
// can override it (for example via `-ldflags "-X .../internal/cli.Version=1.2.3"`).
var Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "phonelint",
	Short: "Flag malformed phone-number tags and propose corrected values",
	Long: `phonelint validates phone-number tag values on map features and shows
structural diffs between the raw value and a normalized replacement:
formatting-only changes are visually distinct from genuine value changes.`,
	SilenceUsage: true,
}

// Execute runs the CLI with os.Args and returns the run error, if any.
func Execute() error {
	rootCmd.Version = Version
	rootCmd.AddCommand(diffCmd, tagsCmd, checkCmd)
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("profile", "", "separator profile (default|no-slash); overrides config")
	return rootCmd.Execute()
}

// applyColorMode sets the global color switch from the --color flag.
func applyColorMode(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
