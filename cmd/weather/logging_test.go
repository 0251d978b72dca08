package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-weather/app"
	"github.com/lixenwraith/vi-weather/constants"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdir(t, t.TempDir())

	logger, logFile, err := setupLogging(false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected disabled logger, got level %v", logger.GetLevel())
	}
	if _, err := os.Stat(constants.LogDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdir(t, t.TempDir())

	logger, logFile, err := setupLogging(true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logger.Debug().Str("command", "wind_left").Msg("command applied")

	logPath := filepath.Join(constants.LogDir, constants.LogFileName)
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"command":"wind_left"`) {
		t.Errorf("Expected structured field in log, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.MkdirAll(constants.LogDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(constants.LogDir, constants.LogFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile, err := setupLogging(true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(constants.LogDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != constants.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestPrintTermination_PlainWhenNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()

	printTermination(f)

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if got := string(data); got != constants.TerminationMessage+"\n" {
		t.Errorf("Expected plain message, got %q", got)
	}
}

func TestExecute_StartupFailureClosesLog(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := app.DefaultConfig()
	cfg.Debug = true

	var captured zerolog.Logger
	start := func(_ app.Config, logger zerolog.Logger) error {
		captured = logger
		return errors.New("no terminal")
	}

	stdout, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer stdout.Close()
	var stderr bytes.Buffer

	if code := execute(cfg, start, stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no terminal") {
		t.Errorf("Expected startup error on stderr, got %q", stderr.String())
	}

	// Writes after execute returns must not reach the file
	captured.Info().Msg("written after close")

	data, err := os.ReadFile(filepath.Join(constants.LogDir, constants.LogFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "startup failed") {
		t.Errorf("Expected startup failure in log, got %q", data)
	}
	if strings.Contains(string(data), "written after close") {
		t.Error("Expected log file to be closed before execute returned")
	}
}

func TestExecute_CleanRunPrintsTermination(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer stdout.Close()
	var stderr bytes.Buffer

	start := func(app.Config, zerolog.Logger) error { return nil }
	if code := execute(app.DefaultConfig(), start, stdout, &stderr); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}

	data, err := os.ReadFile(stdout.Name())
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != constants.TerminationMessage+"\n" {
		t.Errorf("Expected termination message, got %q", data)
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected empty stderr, got %q", stderr.String())
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
