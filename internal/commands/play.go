// internal/commands/play.go
package parabolic

import (
	"github.com/mwiater/parabolic/internal/tui"
	"github.com/spf13/cobra"
)

// startGUI is a function alias to tui.StartGUI so tests can stub the terminal program.
var startGUI = tui.StartGUI

// playCmd represents the 'play' command, which starts the interactive game.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the parabola matching game",
	Long: `The 'play' command opens the interactive game: move and stretch the plotted
parabola with the arrow keys (or h/j/k/l), w and n, then press enter to check it
against the target equation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startGUI(GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
