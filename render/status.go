package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-weather/constants"
	"github.com/lixenwraith/vi-weather/engine"
)

// StatusText formats the engine snapshot for the status line, fitted to width cells
// The key hint is dropped first when space runs out, then the text is truncated
func StatusText(s engine.Status, width int) string {
	if width <= 0 {
		return ""
	}

	fields := []string{
		s.Mode.String(),
		fmt.Sprintf("wind %+.2f", s.Wind),
		fmt.Sprintf("intensity %.2f", s.Intensity),
		fmt.Sprintf("drops %d", s.Particles),
	}
	text := " " + strings.Join(fields, constants.StatusSeparator) + " "

	withHint := text + constants.StatusKeyHint + " "
	if runewidth.StringWidth(withHint) <= width {
		return withHint
	}
	return runewidth.Truncate(text, width, "…")
}
