package input

import (
	"github.com/lixenwraith/vi-weather/constants"
	"github.com/lixenwraith/vi-weather/engine"
)

// Command discriminates the parameter changes a key can request
type Command uint8

const (
	CmdNone          Command = iota
	CmdQuit                  // q
	CmdWindLeft              // a
	CmdWindRight             // d
	CmdIntensityUp           // w
	CmdIntensityDown         // s
	CmdRain                  // r
	CmdSnow                  // n
)

var commandNames = [...]string{
	CmdNone:          "none",
	CmdQuit:          "quit",
	CmdWindLeft:      "wind_left",
	CmdWindRight:     "wind_right",
	CmdIntensityUp:   "intensity_up",
	CmdIntensityDown: "intensity_down",
	CmdRain:          "rain",
	CmdSnow:          "snow",
}

// String returns the log name of the command
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// KeyTable maps lowercase keys to commands
type KeyTable map[rune]Command

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() KeyTable {
	return KeyTable{
		'q': CmdQuit,
		'a': CmdWindLeft,
		'd': CmdWindRight,
		'w': CmdIntensityUp,
		's': CmdIntensityDown,
		'r': CmdRain,
		'n': CmdSnow,
	}
}

// Lookup returns the command bound to key, CmdNone for unbound keys
func (kt KeyTable) Lookup(key rune) Command {
	return kt[key]
}

// Dispatch applies cmd to the engine, returns false when the loop should stop
func Dispatch(e *engine.Engine, cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdWindLeft:
		e.AdjustWind(-constants.WindStep)
	case CmdWindRight:
		e.AdjustWind(constants.WindStep)
	case CmdIntensityUp:
		e.AdjustIntensity(constants.IntensityStep)
	case CmdIntensityDown:
		e.AdjustIntensity(-constants.IntensityStep)
	case CmdRain:
		e.SetMode(engine.ModeRain)
	case CmdSnow:
		e.SetMode(engine.ModeSnow)
	}
	return true
}
