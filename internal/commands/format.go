// internal/commands/format.go
package parabolic

import (
	"fmt"

	"github.com/mwiater/parabolic/internal/parabola"
	"github.com/spf13/cobra"
)

// formatCmd implements 'format', which renders a parameter document in vertex form.
var formatCmd = &cobra.Command{
	Use:     "format PARAMS",
	Short:   "Render parameters as a vertex-form equation",
	Example: `  parabolic format '{"a":0.8,"h":-1,"k":1}'`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parseParams(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), equationText(parabola.Format(p)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
