package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the tick and render interval (~30 FPS)
	FrameUpdateInterval = time.Second / 30

	// InputQueueSize is the capacity of the poller's key buffer, keys beyond it are dropped
	InputQueueSize = 64
)

// Logging
const (
	// LogDir is the directory created for the debug log
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "weather.log"
)
