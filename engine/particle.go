package engine

// Particle is one falling element owned by the Engine
type Particle struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
	Color  Color
}

// advance applies wind to the horizontal velocity, then moves by the velocity
func (p *Particle) advance(wind float64) {
	p.VX += wind
	p.X += p.VX
	p.Y += p.VY
}

// inBounds reports whether the particle lies within [0,width) x [0,height)
func (p *Particle) inBounds(width, height int) bool {
	return p.X >= 0 && p.X < float64(width) && p.Y >= 0 && p.Y < float64(height)
}
