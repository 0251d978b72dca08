package engine

import (
	"math"

	"github.com/lixenwraith/vi-weather/constants"
)

// Engine owns the particle population and the parameters driving it
// A single instance is created at startup and threaded through the loop, it is not safe for concurrent use
type Engine struct {
	width, height int

	particles []Particle
	wind      float64
	intensity float64
	mode      Mode

	rng Rand
}

// Status is a value snapshot of the engine parameters
type Status struct {
	Mode      Mode
	Wind      float64
	Intensity float64
	Particles int
}

// New creates an engine for a fixed grid with the startup defaults
func New(width, height int, rng Rand) *Engine {
	return &Engine{
		width:     width,
		height:    height,
		particles: make([]Particle, 0, width),
		wind:      constants.InitialWind,
		intensity: constants.InitialIntensity,
		mode:      ModeRain,
		rng:       rng,
	}
}

// Width returns the grid width fixed at construction
func (e *Engine) Width() int { return e.width }

// Height returns the grid height fixed at construction
func (e *Engine) Height() int { return e.height }

// Wind returns the current horizontal bias
func (e *Engine) Wind() float64 { return e.wind }

// Intensity returns the current spawn probability
func (e *Engine) Intensity() float64 { return e.intensity }

// Mode returns the variant used for future spawns
func (e *Engine) Mode() Mode { return e.mode }

// Len returns the live particle count
func (e *Engine) Len() int { return len(e.particles) }

// Particles returns the live population
// The slice is owned by the engine and is only valid until the next Tick
func (e *Engine) Particles() []Particle { return e.particles }

// Status returns a snapshot of the parameters and population size
func (e *Engine) Status() Status {
	return Status{
		Mode:      e.mode,
		Wind:      e.wind,
		Intensity: e.intensity,
		Particles: len(e.particles),
	}
}

// Spawn creates at most one particle at the top row
// A uniform draw at or below intensity spawns exactly one particle, otherwise none
func (e *Engine) Spawn() {
	if e.rng.Float64() > e.intensity {
		return
	}

	x := float64(e.rng.Intn(e.width + 1))

	var p Particle
	switch e.mode {
	case ModeRain:
		p = Particle{
			X:     x,
			VY:    constants.RainVelocityY,
			Glyph: constants.RainGlyph,
			Color: ColorCyan,
		}
	case ModeSnow:
		p = Particle{
			X:     x,
			VX:    -constants.SnowDriftMax + 2*constants.SnowDriftMax*e.rng.Float64(),
			VY:    constants.SnowVelocityY,
			Glyph: constants.SnowGlyph,
			Color: ColorWhite,
		}
	default:
		return
	}

	e.particles = append(e.particles, p)
}

// Tick advances the simulation one step: spawn, move, cull
func (e *Engine) Tick() {
	e.Spawn()

	for i := range e.particles {
		e.particles[i].advance(e.wind)
	}

	// Cull in place, survivors keep their relative order
	live := e.particles[:0]
	for _, p := range e.particles {
		if p.inBounds(e.width, e.height) {
			live = append(live, p)
		}
	}
	clear(e.particles[len(live):])
	e.particles = live
}

// AdjustWind adds delta to the wind, wind is unbounded
func (e *Engine) AdjustWind(delta float64) {
	e.wind += delta
}

// AdjustIntensity adds delta to the intensity, snaps it to the IntensityStep grid
// and clamps it to [IntensityMin, IntensityMax]
func (e *Engine) AdjustIntensity(delta float64) {
	e.intensity = clampIntensity(e.intensity + delta)
}

// SetMode switches the variant of future spawns, live particles are untouched
func (e *Engine) SetMode(m Mode) {
	switch m {
	case ModeRain, ModeSnow:
		e.mode = m
	}
}

// clampIntensity snaps v to the nearest step so repeated presses do not accumulate drift
func clampIntensity(v float64) float64 {
	const stepsPerUnit = 1 / constants.IntensityStep
	v = math.Round(v*stepsPerUnit) / stepsPerUnit
	return min(constants.IntensityMax, max(constants.IntensityMin, v))
}
