package render

import (
	"strings"

	"github.com/lixenwraith/vi-weather/engine"
)

// Cell is one grid position of a frame, a zero Rune is blank
type Cell struct {
	Rune  rune
	Color engine.Color
}

// Blank reports whether nothing was drawn into the cell
func (c Cell) Blank() bool {
	return c.Rune == 0
}

// Frame is a height x width grid of colored glyphs, row-major
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame allocates a blank frame with fixed dimensions
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// Compose rasterizes the engine's particles into a new frame of the engine's grid size
func Compose(e *engine.Engine) *Frame {
	f := NewFrame(e.Width(), e.Height())
	f.draw(e.Particles())
	return f
}

// Recompose resets every cell to blank and rasterizes particles into the existing buffer
func (f *Frame) Recompose(particles []engine.Particle) {
	clear(f.cells)
	f.draw(particles)
}

// draw writes particles in slice order, later particles overwrite earlier ones on the same cell
func (f *Frame) draw(particles []engine.Particle) {
	for i := range particles {
		p := &particles[i]
		// Conversion truncates toward zero
		x, y := int(p.X), int(p.Y)
		if !f.inBounds(x, y) {
			continue
		}
		f.cells[y*f.width+x] = Cell{Rune: p.Glyph, Color: p.Color}
	}
}

// Width returns the column count
func (f *Frame) Width() int { return f.width }

// Height returns the row count
func (f *Frame) Height() int { return f.height }

// At returns the cell at x,y, out of bounds reads are blank
func (f *Frame) At(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{}
	}
	return f.cells[y*f.width+x]
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// String renders the frame as plain text rows, blanks as spaces
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.width + 1) * f.height)
	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			if c.Blank() {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
