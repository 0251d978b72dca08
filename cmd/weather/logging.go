package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-weather/constants"
)

// maxLogSize is the size at which the previous log is rotated aside on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging returns a file logger when debug is set, and a no-op logger otherwise
// The screen owns stdout, so log output never goes to the terminal
func setupLogging(debug bool) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(constants.LogDir, 0755); err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "create log directory")
	}

	logPath := filepath.Join(constants.LogDir, constants.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(constants.LogDir, fmt.Sprintf("weather-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return zerolog.Nop(), nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "open log file")
	}

	logger := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return logger, f, nil
}
