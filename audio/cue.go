package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-weather/constants"
)

const sampleRate = beep.SampleRate(constants.CueSampleRate)

// Cue pitches in Hz
const (
	PitchLow  = 330.0
	PitchMid  = 440.0
	PitchHigh = 660.0
)

// CuePlayer plays short sine cues on key commands
// Playing before Start or after Stop is a no-op, audio is never required
type CuePlayer struct {
	mu      sync.Mutex
	started bool
	log     zerolog.Logger
}

// NewCuePlayer creates a stopped player
func NewCuePlayer(log zerolog.Logger) *CuePlayer {
	return &CuePlayer{log: log}
}

// Start initializes the speaker
func (p *CuePlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	p.started = true
	return nil
}

// Stop closes the speaker
func (p *CuePlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Close()
	p.started = false
}

// Play queues a cue at the given pitch
func (p *CuePlayer) Play(freq float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	if cue, ok := p.tone(freq); ok {
		speaker.Play(cue)
	}
}

// tone builds the cue, a failure is logged and the cue is skipped
func (p *CuePlayer) tone(freq float64) (beep.Streamer, bool) {
	cue, err := Tone(freq)
	if err != nil {
		p.log.Warn().Err(err).Float64("freq", freq).Msg("cue dropped")
		return nil, false
	}
	return cue, true
}

// Tone builds a finite, attenuated sine cue of CueDurationMs
func Tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %.0fHz", freq)
	}
	n := sampleRate.N(constants.CueDurationMs * time.Millisecond)
	return &effects.Volume{
		Streamer: beep.Take(n, sine),
		Base:     2,
		Volume:   constants.CueVolume,
	}, nil
}
