package render

import (
	"fmt"
	"io"

	"github.com/lixenwraith/whale-simulator/engine"
	"github.com/pkg/errors"
)

// Summary returns the end-of-game report lines
func Summary(s engine.Score) []string {
	return []string{
		"Thanks for playing Whale Simulator!",
		fmt.Sprintf("You ate %d delicious krill and were harpooned %d time(s).", s.Krill, s.Deaths),
		fmt.Sprintf("Your krill/death ratio was %s.", s.RatioString()),
	}
}

// WriteSummary prints the report once the screen has been released
func WriteSummary(w io.Writer, s engine.Score) error {
	for _, line := range Summary(s) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "write summary")
		}
	}
	return nil
}
