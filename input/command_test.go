package input

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-weather/engine"
)

func TestLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		key  rune
		want Command
	}{
		{'q', CmdQuit},
		{'a', CmdWindLeft},
		{'d', CmdWindRight},
		{'w', CmdIntensityUp},
		{'s', CmdIntensityDown},
		{'r', CmdRain},
		{'n', CmdSnow},
		{'x', CmdNone},
		{' ', CmdNone},
		{'1', CmdNone},
		{0, CmdNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := kt.Lookup(tt.key); got != tt.want {
				t.Errorf("Lookup(%q): expected %v, got %v", tt.key, tt.want, got)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name          string
		cmd           Command
		wantContinue  bool
		wantWind      float64
		wantIntensity float64
		wantMode      engine.Mode
	}{
		{"Quit stops loop", CmdQuit, false, 0, 0.3, engine.ModeRain},
		{"Wind left", CmdWindLeft, true, -0.05, 0.3, engine.ModeRain},
		{"Wind right", CmdWindRight, true, 0.05, 0.3, engine.ModeRain},
		{"Intensity up", CmdIntensityUp, true, 0, 0.35, engine.ModeRain},
		{"Intensity down", CmdIntensityDown, true, 0, 0.25, engine.ModeRain},
		{"Snow", CmdSnow, true, 0, 0.3, engine.ModeSnow},
		{"Rain", CmdRain, true, 0, 0.3, engine.ModeRain},
		{"None is ignored", CmdNone, true, 0, 0.3, engine.ModeRain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New(10, 5, &engine.ScriptedRand{})

			if got := Dispatch(e, tt.cmd); got != tt.wantContinue {
				t.Errorf("Expected continue=%v, got %v", tt.wantContinue, got)
			}
			if math.Abs(e.Wind()-tt.wantWind) > 1e-9 {
				t.Errorf("Expected wind %f, got %f", tt.wantWind, e.Wind())
			}
			if math.Abs(e.Intensity()-tt.wantIntensity) > 1e-9 {
				t.Errorf("Expected intensity %f, got %f", tt.wantIntensity, e.Intensity())
			}
			if e.Mode() != tt.wantMode {
				t.Errorf("Expected mode %v, got %v", tt.wantMode, e.Mode())
			}
		})
	}
}

func TestDispatchIntensityPresses(t *testing.T) {
	e := engine.New(10, 5, &engine.ScriptedRand{})
	kt := DefaultKeyTable()

	for i := 0; i < 5; i++ {
		Dispatch(e, kt.Lookup('s'))
	}
	if math.Abs(e.Intensity()-0.05) > 1e-9 {
		t.Errorf("Expected 0.05 after five presses, got %f", e.Intensity())
	}

	Dispatch(e, kt.Lookup('s'))
	if e.Intensity() != 0.05 {
		t.Errorf("Expected sixth press to stay at 0.05, got %f", e.Intensity())
	}
}

func TestCommandString(t *testing.T) {
	if CmdIntensityUp.String() != "intensity_up" {
		t.Errorf("Unexpected name %q", CmdIntensityUp)
	}
	if Command(200).String() != "unknown" {
		t.Errorf("Expected unknown for out of range command")
	}
}
