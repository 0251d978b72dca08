package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-weather/engine"
)

// Terminal palette colors for particle tags
var (
	ColorRain     = tcell.ColorTeal  // ANSI cyan (palette 6)
	ColorSnow     = tcell.ColorWhite // ANSI bright white
	ColorStatusFg = tcell.ColorBlack
	ColorStatusBg = tcell.ColorSilver
)

// StyleFor returns the style used to paint a particle color tag
func StyleFor(c engine.Color) tcell.Style {
	switch c {
	case engine.ColorCyan:
		return tcell.StyleDefault.Foreground(ColorRain)
	case engine.ColorWhite:
		return tcell.StyleDefault.Foreground(ColorSnow)
	}
	return tcell.StyleDefault
}
