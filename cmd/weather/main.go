package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-weather/app"
	"github.com/lixenwraith/vi-weather/audio"
	"github.com/lixenwraith/vi-weather/constants"
	"github.com/lixenwraith/vi-weather/core"
	"github.com/lixenwraith/vi-weather/engine"
	"github.com/lixenwraith/vi-weather/input"
	"github.com/lixenwraith/vi-weather/render"
)

func main() {
	os.Exit(execute(app.DefaultConfig(), run, os.Stdout, os.Stderr))
}

// execute runs one session and returns the exit code
// Deferred cleanup, including the log file, completes before main calls os.Exit
func execute(cfg app.Config, start func(app.Config, zerolog.Logger) error, stdout *os.File, stderr io.Writer) int {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	logger, logFile, err := setupLogging(cfg.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := start(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(stderr, "Failed to start: %v\n", err)
		return 1
	}

	printTermination(stdout)
	return 0
}

// run owns the screen session, it is released on every return path
func run(cfg app.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := newScreen()
	if err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	display := render.NewDisplay(screen)
	width, height := display.Size()

	var cue app.Cue
	if cfg.Audio {
		player := audio.NewCuePlayer(logger)
		if err := player.Start(); err != nil {
			// Non-fatal, the animation runs without sound
			logger.Warn().Err(err).Msg("audio unavailable")
		} else {
			defer player.Stop()
			cue = player
		}
	}

	eng := engine.New(width, height, engine.NewRand(cfg.Seed))
	keys := input.NewPoller(screen, stop, logger)
	loop := app.NewLoop(cfg, eng, display, keys, cue, logger)

	return loop.Run(ctx)
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// printTermination writes the exit message, colored only on a terminal
func printTermination(f *os.File) {
	if isatty.IsTerminal(f.Fd()) {
		fmt.Fprintf(f, "\x1b[32m%s\x1b[0m\n", constants.TerminationMessage)
		return
	}
	fmt.Fprintln(f, constants.TerminationMessage)
}
