package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-weather/audio"
	"github.com/lixenwraith/vi-weather/engine"
	"github.com/lixenwraith/vi-weather/input"
	"github.com/lixenwraith/vi-weather/render"
)

// Painter consumes one composed frame per tick
type Painter interface {
	Paint(f *render.Frame, status string)
}

// Cue plays feedback for an applied command
type Cue interface {
	Play(freq float64)
}

// Loop is the single owner of the engine between startup and exit
type Loop struct {
	cfg     Config
	engine  *engine.Engine
	frame   *render.Frame
	painter Painter
	keys    input.Source
	table   input.KeyTable
	cue     Cue
	log     zerolog.Logger
	ticks   uint64
}

// NewLoop wires the collaborators, cue may be nil
func NewLoop(cfg Config, e *engine.Engine, painter Painter, keys input.Source, cue Cue, log zerolog.Logger) *Loop {
	return &Loop{
		cfg:     cfg,
		engine:  e,
		frame:   render.NewFrame(e.Width(), e.Height()),
		painter: painter,
		keys:    keys,
		table:   input.DefaultKeyTable(),
		cue:     cue,
		log:     log,
	}
}

// Ticks returns the number of completed ticks
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run steps the loop until the quit key or ctx cancellation, both end with a nil error
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.FrameInterval)
	defer ticker.Stop()

	l.log.Info().
		Int("width", l.engine.Width()).
		Int("height", l.engine.Height()).
		Dur("interval", l.cfg.FrameInterval).
		Msg("loop started")

	for {
		if ctx.Err() != nil {
			l.log.Info().Uint64("ticks", l.ticks).Msg("loop interrupted")
			return nil
		}

		if !l.Step() {
			l.log.Info().Uint64("ticks", l.ticks).Msg("quit requested")
			return nil
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

// Step runs one tick: consume at most one available key, apply it, advance, compose, paint
// Returns false when the key requested termination, in which case the engine is not advanced
func (l *Loop) Step() bool {
	if l.keys.Available() {
		if key := l.keys.Next(); key != 0 {
			if !l.apply(key) {
				return false
			}
		}
	}

	l.engine.Tick()
	l.frame.Recompose(l.engine.Particles())

	var status string
	if l.cfg.StatusLine {
		status = render.StatusText(l.engine.Status(), l.frame.Width())
	}
	l.painter.Paint(l.frame, status)

	l.ticks++
	return true
}

func (l *Loop) apply(key rune) bool {
	cmd := l.table.Lookup(key)
	if cmd == input.CmdNone {
		return true
	}

	if !input.Dispatch(l.engine, cmd) {
		return false
	}

	s := l.engine.Status()
	l.log.Debug().
		Str("command", cmd.String()).
		Str("mode", s.Mode.String()).
		Float64("wind", s.Wind).
		Float64("intensity", s.Intensity).
		Int("particles", s.Particles).
		Msg("command applied")

	if l.cue != nil {
		l.cue.Play(cuePitch(cmd))
	}
	return true
}

// cuePitch maps commands to cue pitches, increases sound higher than decreases
func cuePitch(cmd input.Command) float64 {
	switch cmd {
	case input.CmdWindRight, input.CmdIntensityUp:
		return audio.PitchHigh
	case input.CmdWindLeft, input.CmdIntensityDown:
		return audio.PitchLow
	}
	return audio.PitchMid
}
