package engine

import (
	"time"

	"github.com/lixenwraith/whale-simulator/constants"
)

// Settings holds the per-tick tuning of the update engine.
// Wall-clock timings are converted to ticks so gameplay speed does not depend on the tick rate.
type Settings struct {
	// Per-tick spawn probabilities in [0, 1]
	KrillChance   float64
	BoatChance    float64
	HarpoonChance float64

	// Live entity caps
	MaxKrill    int
	MaxBoats    int
	MaxHarpoons int

	KrillVelocity   Velocity
	BoatVelocity    Velocity
	HarpoonVelocity Velocity

	// StunTicks is how long a dead whale waits before respawning
	StunTicks int
}

// NewSettings derives the default tuning for a tick interval and field size
func NewSettings(tick time.Duration, width, height int) Settings {
	return Settings{
		KrillChance:   ChancePerTick(constants.KrillSpawnMean, tick),
		BoatChance:    ChancePerTick(constants.BoatSpawnMean, tick),
		HarpoonChance: ChancePerTick(constants.HarpoonDropMean, tick),

		MaxKrill:    max(width*height/constants.KrillDensity, 1),
		MaxBoats:    constants.MaxBoats,
		MaxHarpoons: constants.MaxHarpoons,

		KrillVelocity: Velocity{
			DX:     -constants.CellStepX,
			Period: TicksFor(constants.KrillDriftInterval, tick),
		},
		BoatVelocity: Velocity{
			DX:     constants.CellStepX,
			Period: TicksFor(constants.BoatMoveInterval, tick),
		},
		HarpoonVelocity: Velocity{
			DY:     constants.CellStepY,
			Period: TicksFor(constants.HarpoonMoveInterval, tick),
		},

		StunTicks: TicksFor(constants.StunDuration, tick),
	}
}

// TicksFor converts a duration into a whole number of ticks, at least one
func TicksFor(d, tick time.Duration) int {
	if tick <= 0 {
		return 1
	}
	n := int((d + tick/2) / tick)
	return max(n, 1)
}

// ChancePerTick converts a mean interval into a per-tick probability
func ChancePerTick(mean, tick time.Duration) float64 {
	if mean <= 0 || tick >= mean {
		return 1
	}
	return float64(tick) / float64(mean)
}
