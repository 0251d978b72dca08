package engine

// Mode selects the weather variant used for new particles
type Mode uint8

const (
	ModeRain Mode = iota
	ModeSnow
)

// String returns the status line label of the mode
func (m Mode) String() string {
	switch m {
	case ModeRain:
		return "RAIN"
	case ModeSnow:
		return "SNOW"
	}
	return "UNKNOWN"
}

// Color is the display tag carried by a particle, mapped to a terminal color by the renderer
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorWhite
)

// String returns the color name
func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	}
	return "none"
}
