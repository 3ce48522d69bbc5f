// internal/commands/check.go
package parabolic

import (
	"fmt"

	"github.com/mwiater/parabolic/internal/logging"
	"github.com/mwiater/parabolic/internal/parabola"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkTarget  string
	checkCurrent string
)

// checkCmd implements 'check', which scores one answer against one target without the TUI.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an answer against a target",
	Long: `The 'check' command compares two parabolas given as JSON documents of the form
{"a": 0.5, "h": 2, "k": -3} and prints the verdict. a must be within 0.1 and
h and k within 1 of the target, all exclusive.`,
	Example: `  parabolic check --target '{"a":0.5,"h":2,"k":-3}' --current '{"a":0.55,"h":2,"k":-3}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseParams(checkTarget)
		if err != nil {
			return fmt.Errorf("--target: %w", err)
		}
		current, err := parseParams(checkCurrent)
		if err != nil {
			return fmt.Errorf("--current: %w", err)
		}

		v := parabola.Evaluate(current, target)
		logging.Logger().Info("check",
			zap.Stringer("outcome", v.Outcome),
			zap.String("target", parabola.Format(target)),
			zap.String("current", parabola.Format(current)),
		)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Target:  %s\n", targetText(parabola.Format(target)))
		fmt.Fprintf(out, "Current: %s\n", equationText(parabola.Format(current)))
		fmt.Fprintln(out, renderVerdict(v))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkTarget, "target", "", "target parabola as JSON")
	checkCmd.Flags().StringVar(&checkCurrent, "current", "", "answer parabola as JSON")
	_ = checkCmd.MarkFlagRequired("target")
	_ = checkCmd.MarkFlagRequired("current")
	rootCmd.AddCommand(checkCmd)
}
