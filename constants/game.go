package constants

import "time"

// Game Loop Timing Constants
const (
	// DefaultTickRate is the default simulation tick interval
	DefaultTickRate = 50 * time.Millisecond

	// MinTickRate and MaxTickRate bound the --tick-rate flag
	MinTickRate = 1 * time.Millisecond
	MaxTickRate = 1 * time.Second

	// DefaultRoundLength is how long a round lasts when --round-length is omitted
	DefaultRoundLength = 600 * time.Second
)

// Field Size Limits
const (
	// MinFieldWidth and MinFieldHeight leave room for the UI and some play space
	MinFieldWidth  = 20
	MinFieldHeight = 15
)

// Event Channel Sizes
const (
	// InputQueueSize is the capacity of the poller to reader channel
	InputQueueSize = 64
)
