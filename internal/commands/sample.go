// internal/commands/sample.go
package parabolic

import (
	"fmt"
	"text/tabwriter"

	"github.com/mwiater/parabolic/internal/parabola"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var sampleYAML bool

// sampleCmd implements 'sample', which prints the curve at every integer x in the plotted domain.
var sampleCmd = &cobra.Command{
	Use:     "sample PARAMS",
	Short:   "Print y = a(x-h)^2 + k over the plotted domain",
	Example: `  parabolic sample '{"a":1,"h":0,"k":0}' --graphRange 5`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parseParams(args[0])
		if err != nil {
			return err
		}
		graphRange := parabola.DefaultGraphRange
		if cfg := GetConfig(); cfg != nil {
			graphRange = cfg.PlotRange()
		}
		points := parabola.Sample(p, graphRange)

		out := cmd.OutOrStdout()
		if sampleYAML {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(points); err != nil {
				return fmt.Errorf("encode samples: %w", err)
			}
			return enc.Close()
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "x\ty\t")
		for _, pt := range points {
			fmt.Fprintf(tw, "%g\t%g\t\n", pt.X, pt.Y)
		}
		return tw.Flush()
	},
}

func init() {
	sampleCmd.Flags().BoolVar(&sampleYAML, "yaml", false, "print samples as YAML")
	rootCmd.AddCommand(sampleCmd)
}
