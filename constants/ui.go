package constants

// Status line
const (
	// StatusKeyHint is appended to the status line when the terminal is wide enough
	StatusKeyHint = "[a/d wind  w/s intensity  r/n mode  q quit]"

	// StatusSeparator joins status line fields
	StatusSeparator = "  "

	// TerminationMessage is printed after the screen is released
	TerminationMessage = "Weather engine stopped ☁️"
)

// Audio cues
const (
	// CueSampleRate is the speaker sample rate in Hz
	CueSampleRate = 44100

	// CueDurationMs is the length of one key cue
	CueDurationMs = 40

	// CueVolume is the beep effects.Volume exponent (base 2), negative is quieter
	CueVolume = -2.5
)
