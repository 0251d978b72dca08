package app

import (
	"time"

	"github.com/lixenwraith/vi-weather/constants"
)

// Config holds the code-level defaults of a run, nothing reads it from flags, files or environment
type Config struct {
	// FrameInterval paces the loop, one tick per interval
	FrameInterval time.Duration
	// StatusLine draws the parameter overlay on the bottom row
	StatusLine bool
	// Audio plays a short cue per applied command when a speaker is available
	Audio bool
	// Debug writes a structured log under constants.LogDir
	Debug bool
	// Seed for the spawn random source, zero seeds from the clock
	Seed int64
}

// DefaultConfig returns the configuration used by cmd/weather
func DefaultConfig() Config {
	return Config{
		FrameInterval: constants.FrameUpdateInterval,
		StatusLine:    true,
		Audio:         true,
		Debug:         false,
	}
}
