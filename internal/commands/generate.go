// internal/commands/generate.go
package parabolic

import (
	"encoding/json"
	"fmt"

	"github.com/mwiater/parabolic/internal/parabola"
	"github.com/spf13/cobra"
)

var (
	generateCount int
	generateJSON  bool
)

// generateCmd implements 'generate', which prints random target equations.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print random target equations",
	Long: `The 'generate' command draws targets the same way the game does: a on the
0.1 grid in [-2, 2], h and k whole numbers in [-5, 5]. Set --seed for a
repeatable sequence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", generateCount)
		}
		var seed int64
		if cfg := GetConfig(); cfg != nil {
			seed = cfg.Seed
		}
		gen := parabola.NewGenerator(parabola.NewSource(seed))

		out := cmd.OutOrStdout()
		for i := 0; i < generateCount; i++ {
			p := gen.Generate()
			if generateJSON {
				data, err := json.Marshal(p)
				if err != nil {
					return fmt.Errorf("encode target: %w", err)
				}
				fmt.Fprintln(out, string(data))
				continue
			}
			fmt.Fprintln(out, targetText(parabola.Format(p)))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of targets to print")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "print each target as a JSON document")
	rootCmd.AddCommand(generateCmd)
}
