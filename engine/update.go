package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/whale-simulator/constants"
)

// TickResult summarizes what happened during one tick
type TickResult struct {
	Moved   bool
	Eaten   int
	Died    bool
	Revived bool
	Spawned int
	Removed int
}

// UpdateEngine advances a World one tick at a time
type UpdateEngine struct {
	world    *World
	settings Settings
	rng      *rand.Rand
}

// NewUpdateEngine creates an update engine; a nil rng is seeded from the runtime
func NewUpdateEngine(world *World, settings Settings, rng *rand.Rand) *UpdateEngine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &UpdateEngine{
		world:    world,
		settings: settings,
		rng:      rng,
	}
}

// World returns the world being updated
func (u *UpdateEngine) World() *World {
	return u.world
}

// Settings returns the engine tuning
func (u *UpdateEngine) Settings() Settings {
	return u.settings
}

// Tick runs one simulation step.
// Krill under the whale are always eaten; a hazard under a live whale, or one
// that swapped cells with it this tick, kills it whether or not krill were eaten.
func (u *UpdateEngine) Tick(intent Intent) TickResult {
	var res TickResult
	w := u.world

	if w.Whale.Dead {
		w.Whale.stun--
		if w.Whale.stun <= 0 {
			w.ReviveWhale()
			res.Revived = true
		}
	}

	from := w.Whale.Pos
	if intent.IsDirection() {
		res.Moved = w.MoveWhale(intent)
	}

	before := w.HazardPositions()
	w.Advance(1)
	res.Spawned = u.spawn()
	res.Removed = w.RemoveOffscreen()

	hits := w.CheckCollisions()
	if res.Moved {
		crossed := w.CheckCrossings(from, before)
		hits.Boats = append(hits.Boats, crossed.Boats...)
		hits.Harpoons = append(hits.Harpoons, crossed.Harpoons...)
	}
	if len(hits.Krill) > 0 {
		res.Eaten = w.EatKrill(hits.Krill)
		w.Score.Krill += res.Eaten
	}

	if !w.Whale.Dead && hits.Fatal() {
		w.RemoveHarpoons(hits.Harpoons)
		w.KillWhale(u.settings.StunTicks)
		w.Score.Deaths++
		res.Died = true
	}

	return res
}

// spawn rolls every spawner once and returns how many entities were created
func (u *UpdateEngine) spawn() int {
	w := u.world
	s := u.settings
	spawned := 0

	if len(w.Krill) < s.MaxKrill && u.roll(s.KrillChance) {
		w.SpawnKrill(u.krillSpawnPoint(), s.KrillVelocity)
		spawned++
	}

	if len(w.Boats) < s.MaxBoats && u.roll(s.BoatChance) {
		slip := Point{X: 0, Y: constants.SurfaceRow}
		if !u.boatAt(slip) {
			w.SpawnBoat(slip, s.BoatVelocity)
			spawned++
		}
	}

	// Iterate by index: spawning harpoons does not touch the boat slice
	for i := range w.Boats {
		if len(w.Harpoons) >= s.MaxHarpoons {
			break
		}
		if u.roll(s.HarpoonChance) {
			w.SpawnHarpoon(Point{X: w.Boats[i].Pos.X, Y: constants.SeaTopRow}, s.HarpoonVelocity)
			spawned++
		}
	}

	return spawned
}

func (u *UpdateEngine) roll(chance float64) bool {
	if chance <= 0 {
		return false
	}
	return u.rng.Float64() < chance
}

func (u *UpdateEngine) boatAt(p Point) bool {
	for _, b := range u.world.Boats {
		if b.Pos == p {
			return true
		}
	}
	return false
}

// krillSpawnPoint picks a random even column inside the krill band
func (u *UpdateEngine) krillSpawnPoint() Point {
	b := u.world.Bounds()
	top := min(constants.KrillTopRow, b.MaxY)
	return Point{
		X: u.rng.IntN(b.MaxX/constants.CellStepX+1) * constants.CellStepX,
		Y: top + u.rng.IntN(b.MaxY-top+1),
	}
}
