// internal/session/scoreboard.go
package session

import (
	"fmt"

	"github.com/mwiater/parabolic/internal/parabola"
)

// Scoreboard tallies verdicts across restarts for the life of the process.
type Scoreboard struct {
	Rounds  int
	Correct int
}

// Record counts one submitted round.
func (b *Scoreboard) Record(v parabola.Verdict) {
	b.Rounds++
	if v.Correct() {
		b.Correct++
	}
}

// String renders e.g. "3/5 correct".
func (b Scoreboard) String() string {
	return fmt.Sprintf("%d/%d correct", b.Correct, b.Rounds)
}
