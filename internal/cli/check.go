package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osmtools/phonelint/internal/phonediff"
	"github.com/osmtools/phonelint/internal/simplelogger"
	"github.com/osmtools/phonelint/internal/uni"
	"github.com/osmtools/phonelint/internal/validator"
)

// feature is one map feature's phone-number tag, as read from the input file.
type feature struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

var (
	checkRegion string
	checkHTML   bool
)

var checkCmd = &cobra.Command{
	Use:   "check <features.json>",
	Short: "Validate phone-number tags and show proposed fixes",
	Long: `Validate the phone-number tag values in a JSON file of features
([{"id": ..., "key": ..., "value": ...}, ...]) and print a diff for every
value with a proposed replacement. Values containing an invalid or
unparseable number are flagged without a proposal.`,
	Example: `  phonelint check --region BE features.json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := separatorProfile(cmd, cfg)
		if err != nil {
			return err
		}
		region := checkRegion
		if region == "" {
			region = cfg.Region
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var features []feature
		if err := json.Unmarshal(data, &features); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		applyColorMode(cmd)
		v := validator.New(region, p)
		out := cmd.OutOrStdout()

		// Align the id/key column across all reported features.
		labelWidth := 0
		for _, f := range features {
			if w := uni.TextWidth(f.ID + " " + f.Key); w > labelWidth {
				labelWidth = w
			}
		}

		var fixable, flagged int
		for _, f := range features {
			res := v.Check(f.Value)
			label := uni.PadRight(f.ID+" "+f.Key, labelWidth)

			if res.Fixable() {
				fixable++
				if checkHTML {
					oldHTML, newHTML := phonediff.DiffHTML(f.Value, res.Suggested, p)
					fmt.Fprintf(out, "%s  - %s\n", label, oldHTML)
					fmt.Fprintf(out, "%s  + %s\n", uni.PadRight("", labelWidth), newHTML)
				} else {
					oldRuns, newRuns := phonediff.DiffValues(f.Value, res.Suggested, p)
					fmt.Fprintf(out, "%s  - %s\n", label, phonediff.RenderTerm(oldRuns))
					fmt.Fprintf(out, "%s  + %s\n", uni.PadRight("", labelWidth), phonediff.RenderTerm(newRuns))
				}
				continue
			}

			for _, n := range res.Numbers {
				if n.Status == validator.StatusInvalid || n.Status == validator.StatusUnparseable {
					flagged++
					fmt.Fprintf(out, "%s  ! %s: %q\n", label, n.Status, n.Raw)
				}
			}
		}

		simplelogger.Log("check %s: %d features, %d fixable, %d flagged", args[0], len(features), fixable, flagged)
		fmt.Fprintf(out, "%d features checked, %d fixable, %d flagged\n", len(features), fixable, flagged)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkRegion, "region", "", "default region for numbers without a country code (e.g. BE)")
	checkCmd.Flags().BoolVar(&checkHTML, "html", false, "emit HTML span markup instead of terminal colors")
}
