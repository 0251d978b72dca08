package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Display paints composed frames to a tcell screen
// Dimensions are measured once at construction and never re-measured
type Display struct {
	screen tcell.Screen
	width  int
	height int
}

// NewDisplay wraps an initialized screen and records its current size
func NewDisplay(screen tcell.Screen) *Display {
	w, h := screen.Size()
	return &Display{
		screen: screen,
		width:  w,
		height: h,
	}
}

// Size returns the dimensions measured at construction
func (d *Display) Size() (int, int) {
	return d.width, d.height
}

// Paint draws the frame and an optional status line on the bottom row, then shows the screen
// Particles always win over status text, the status only fills blank cells
func (d *Display) Paint(f *Frame, status string) {
	d.screen.Clear()

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := f.At(x, y)
			if c.Blank() {
				continue
			}
			d.screen.SetContent(x, y, c.Rune, nil, StyleFor(c.Color))
		}
	}

	if status != "" && d.height > 0 {
		d.drawStatus(f, status)
	}

	d.screen.Show()
}

// drawStatus right-aligns text on the last row, skipping cells the frame occupies
func (d *Display) drawStatus(f *Frame, text string) {
	style := tcell.StyleDefault.Foreground(ColorStatusFg).Background(ColorStatusBg)
	y := d.height - 1
	x := d.width - runewidth.StringWidth(text)
	if x < 0 {
		x = 0
	}

	for _, r := range text {
		if x >= d.width {
			break
		}
		if f.At(x, y).Blank() {
			d.screen.SetContent(x, y, r, nil, style)
		}
		x += runewidth.RuneWidth(r)
	}
}
