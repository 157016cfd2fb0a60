package constants

import "time"

// Movement
const (
	// CellStepX is the horizontal step of every entity; glyphs are two cells wide
	CellStepX = 2

	// CellStepY is the vertical step of every entity
	CellStepY = 1

	// BoatMoveInterval is how often boats sail one step to the right
	BoatMoveInterval = 1000 * time.Millisecond

	// HarpoonMoveInterval is how often harpoons sink one row
	HarpoonMoveInterval = 250 * time.Millisecond

	// KrillDriftInterval is how often krill drift one step to the left
	KrillDriftInterval = 3000 * time.Millisecond
)

// Spawning
// Mean intervals are converted into per-tick probabilities for the current tick rate
const (
	// KrillSpawnMean is the average time between krill spawns
	KrillSpawnMean = 2750 * time.Millisecond

	// BoatSpawnMean is the average time between boat spawns
	BoatSpawnMean = 3750 * time.Millisecond

	// HarpoonDropMean is the average time between harpoon drops of a single boat
	HarpoonDropMean = 7500 * time.Millisecond

	// KrillDensity is the number of field cells per allowed live krill
	KrillDensity = 100

	// MaxBoats caps simultaneously live boats
	MaxBoats = 6

	// MaxHarpoons caps simultaneously live harpoons
	MaxHarpoons = 24
)

// Whale
const (
	// StunDuration is how long a harpooned whale stays dead before it respawns
	StunDuration = 2 * time.Second

	// WhaleStartOffsetY places the whale slightly below the middle of the field
	WhaleStartOffsetY = 3
)
