package engine

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/whale-simulator/constants"
)

// quietSettings disables every spawner so tests control membership
func quietSettings() Settings {
	s := NewSettings(100*time.Millisecond, 40, 20)
	s.KrillChance = 0
	s.BoatChance = 0
	s.HarpoonChance = 0
	return s
}

func newTestEngine(s Settings, seed uint64) *UpdateEngine {
	return NewUpdateEngine(NewWorld(40, 20), s, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestNewSettings(t *testing.T) {
	s := NewSettings(100*time.Millisecond, 40, 20)

	if s.MaxKrill != 8 {
		t.Errorf("Expected 40*20/100 = 8 max krill, got %d", s.MaxKrill)
	}
	if s.BoatVelocity.Period != 10 || s.BoatVelocity.DX != constants.CellStepX {
		t.Errorf("Expected boats to step %d cells every 10 ticks, got %+v", constants.CellStepX, s.BoatVelocity)
	}
	if s.HarpoonVelocity.Period != 3 && s.HarpoonVelocity.Period != 2 {
		t.Errorf("Expected harpoons to sink every 2-3 ticks at 100ms, got %+v", s.HarpoonVelocity)
	}
	if s.StunTicks != 20 {
		t.Errorf("Expected 20 stun ticks, got %d", s.StunTicks)
	}
	if s.KrillChance <= 0 || s.KrillChance >= 1 {
		t.Errorf("Krill chance out of range: %v", s.KrillChance)
	}
}

func TestTicksForAndChance(t *testing.T) {
	if got := TicksFor(time.Second, 50*time.Millisecond); got != 20 {
		t.Errorf("Expected 20 ticks, got %d", got)
	}
	if got := TicksFor(10*time.Millisecond, time.Second); got != 1 {
		t.Errorf("Expected at least one tick, got %d", got)
	}
	if got := ChancePerTick(time.Second, 2*time.Second); got != 1 {
		t.Errorf("Tick longer than the mean must spawn every tick, got %v", got)
	}
	if got := ChancePerTick(time.Second, 100*time.Millisecond); got != 0.1 {
		t.Errorf("Expected 0.1, got %v", got)
	}
}

func TestTickEatsKrillUnderWhale(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 5, Y: 5}
	k := w.SpawnKrill(Point{X: 5, Y: 5}, u.Settings().KrillVelocity)

	res := u.Tick(IntentNone)

	if res.Eaten != 1 || w.Score.Krill != 1 {
		t.Errorf("Expected one krill eaten, got result %+v score %+v", res, w.Score)
	}
	for _, remaining := range w.Krill {
		if remaining.ID == k.ID {
			t.Errorf("Eaten krill %d still in the world", k.ID)
		}
	}
	if res.Died || w.Whale.Dead {
		t.Error("Eating krill must not kill the whale")
	}
}

func TestTickEatsAllOverlappingKrill(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: 10}
	for i := 0; i < 3; i++ {
		w.SpawnKrill(Point{X: 10, Y: 10}, Velocity{})
	}
	w.SpawnKrill(Point{X: 14, Y: 10}, Velocity{})

	res := u.Tick(IntentNone)

	if res.Eaten != 3 || w.Score.Krill != 3 {
		t.Errorf("Expected exactly 3 krill eaten, got %d (score %d)", res.Eaten, w.Score.Krill)
	}
	if len(w.Krill) != 1 {
		t.Errorf("Expected the distant krill to survive, got %d krill", len(w.Krill))
	}
}

func TestTickBoatSailsOntoWhale(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: constants.SurfaceRow}
	w.SpawnBoat(Point{X: 8, Y: constants.SurfaceRow}, Velocity{DX: 2, Period: 1})

	res := u.Tick(IntentNone)

	if !res.Died || !w.Whale.Dead {
		t.Fatalf("Expected the whale to die, got result %+v", res)
	}
	if w.Score.Deaths != 1 {
		t.Errorf("Expected one death, got %d", w.Score.Deaths)
	}
	if len(w.Boats) != 1 {
		t.Errorf("Boats survive a collision, got %d boats", len(w.Boats))
	}
}

func TestTickBoatSwapKills(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: constants.SurfaceRow}
	w.SpawnBoat(Point{X: 8, Y: constants.SurfaceRow}, Velocity{DX: 2, Period: 1})

	res := u.Tick(IntentLeft)

	if !res.Moved {
		t.Fatal("Expected the whale to move left")
	}
	if !res.Died || !w.Whale.Dead || w.Score.Deaths != 1 {
		t.Errorf("Swimming through a boat must kill the whale, got result %+v score %+v", res, w.Score)
	}
	if len(w.Boats) != 1 {
		t.Errorf("Boats survive a collision, got %d boats", len(w.Boats))
	}
}

func TestTickHarpoonSwapKills(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: 9}
	w.SpawnHarpoon(Point{X: 10, Y: 8}, Velocity{DY: 1, Period: 1})

	res := u.Tick(IntentUp)

	if !res.Died || w.Score.Deaths != 1 {
		t.Fatalf("Rising through a sinking harpoon must kill the whale, got result %+v", res)
	}
	if len(w.Harpoons) != 0 {
		t.Errorf("Expected the crossing harpoon to be consumed, got %+v", w.Harpoons)
	}
}

func TestTickSideBySideIsNotACrossing(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: 9}
	w.SpawnHarpoon(Point{X: 12, Y: 8}, Velocity{DY: 1, Period: 1})

	if res := u.Tick(IntentUp); res.Died {
		t.Errorf("Harpoon in the next column must not kill the whale, got %+v", res)
	}
}

func TestTickDeathWithKrillInSameTick(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: constants.SurfaceRow}
	w.SpawnKrill(Point{X: 10, Y: constants.SurfaceRow}, Velocity{})
	w.SpawnBoat(Point{X: 8, Y: constants.SurfaceRow}, Velocity{DX: 2, Period: 1})

	res := u.Tick(IntentNone)

	if !res.Died || !w.Whale.Dead {
		t.Error("Boat collision must kill the whale even when krill are eaten")
	}
	if res.Eaten != 1 || len(w.Krill) != 0 {
		t.Errorf("Overlapping krill must still be consumed, got eaten=%d left=%d", res.Eaten, len(w.Krill))
	}
}

func TestTickHarpoonStrikeIsConsumed(t *testing.T) {
	u := newTestEngine(quietSettings(), 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: 8}
	w.SpawnHarpoon(Point{X: 10, Y: 7}, Velocity{DY: 1, Period: 1})
	other := w.SpawnHarpoon(Point{X: 12, Y: 7}, Velocity{DY: 1, Period: 1})

	res := u.Tick(IntentNone)

	if !res.Died {
		t.Fatal("Expected harpoon strike to kill the whale")
	}
	if len(w.Harpoons) != 1 || w.Harpoons[0].ID != other.ID {
		t.Errorf("Expected only the striking harpoon removed, got %+v", w.Harpoons)
	}
}

func TestDeadWhaleStunAndRespawn(t *testing.T) {
	s := quietSettings()
	s.StunTicks = 3
	u := newTestEngine(s, 1)
	w := u.World()
	w.Whale.Pos = Point{X: 10, Y: 10}
	w.SpawnHarpoon(Point{X: 10, Y: 10}, Velocity{})

	if res := u.Tick(IntentNone); !res.Died {
		t.Fatal("Expected initial death")
	}
	diedAt := w.Whale.Pos

	// A stationary harpoon lands on the corpse: no double counting while dead
	w.SpawnHarpoon(diedAt, Velocity{})

	for i := 1; i < s.StunTicks; i++ {
		res := u.Tick(IntentRight)
		if res.Moved || w.Whale.Pos != diedAt {
			t.Errorf("tick %d: dead whale moved to %v", i, w.Whale.Pos)
		}
		if res.Died || w.Score.Deaths != 1 {
			t.Errorf("tick %d: dead whale must ignore hazards, deaths=%d", i, w.Score.Deaths)
		}
		if !w.Whale.Dead {
			t.Fatalf("tick %d: whale revived early", i)
		}
	}

	res := u.Tick(IntentNone)
	if !res.Revived {
		t.Fatalf("Expected revival after %d ticks, result %+v", s.StunTicks, res)
	}
	// Revived onto the waiting harpoon
	if !res.Died || w.Score.Deaths != 2 {
		t.Errorf("Expected revived whale to be struck again, deaths=%d", w.Score.Deaths)
	}
}

func TestNoInputNoDrift(t *testing.T) {
	u := newTestEngine(NewSettings(50*time.Millisecond, 40, 20), 7)
	w := u.World()
	start := w.Whale.Pos

	for i := 0; i < 200; i++ {
		u.Tick(IntentNone)
		if !w.Whale.Dead && w.Whale.Pos != start {
			t.Fatalf("tick %d: whale drifted from %v to %v", i, start, w.Whale.Pos)
		}
	}
}

func TestWhaleAlwaysInBounds(t *testing.T) {
	u := newTestEngine(NewSettings(50*time.Millisecond, 40, 20), 42)
	w := u.World()
	rng := rand.New(rand.NewPCG(3, 4))
	intents := []Intent{IntentNone, IntentUp, IntentDown, IntentLeft, IntentRight}
	wb := w.WhaleBounds()

	for i := 0; i < 2000; i++ {
		u.Tick(intents[rng.IntN(len(intents))])
		if !wb.Contains(w.Whale.Pos) {
			t.Fatalf("tick %d: whale out of bounds at %v", i, w.Whale.Pos)
		}
	}
}

func TestEntitiesBoundedAndNeverReappear(t *testing.T) {
	s := NewSettings(50*time.Millisecond, 40, 20)
	s.KrillChance = 1
	s.BoatChance = 1
	s.HarpoonChance = 1
	s.KrillVelocity = Velocity{DX: -2, Period: 2}
	u := newTestEngine(s, 99)
	w := u.World()
	b := w.Bounds()

	gone := make(map[EntityID]bool)
	prev := make(map[EntityID]bool)

	for i := 0; i < 1000; i++ {
		u.Tick(IntentNone)

		if len(w.Krill) > s.MaxKrill || len(w.Boats) > s.MaxBoats || len(w.Harpoons) > s.MaxHarpoons {
			t.Fatalf("tick %d: caps exceeded: %d krill, %d boats, %d harpoons",
				i, len(w.Krill), len(w.Boats), len(w.Harpoons))
		}

		cur := make(map[EntityID]bool)
		check := func(id EntityID, p Point) {
			if !b.Contains(p) {
				t.Fatalf("tick %d: entity %d left the field at %v", i, id, p)
			}
			if gone[id] {
				t.Fatalf("tick %d: removed entity %d reappeared", i, id)
			}
			cur[id] = true
		}
		for _, k := range w.Krill {
			check(k.ID, k.Pos)
		}
		for _, bt := range w.Boats {
			check(bt.ID, bt.Pos)
		}
		for _, h := range w.Harpoons {
			check(h.ID, h.Pos)
		}

		for id := range prev {
			if !cur[id] {
				gone[id] = true
			}
		}
		prev = cur
	}

	if len(gone) == 0 {
		t.Error("Expected some entities to leave the field over 1000 ticks")
	}
}

func TestBoatSlipOccupied(t *testing.T) {
	s := quietSettings()
	s.BoatChance = 1
	s.BoatVelocity = Velocity{DX: 2, Period: 100}
	u := newTestEngine(s, 1)
	w := u.World()

	u.Tick(IntentNone)
	u.Tick(IntentNone)

	if len(w.Boats) != 1 {
		t.Errorf("Expected a single boat while the launch cell is taken, got %d", len(w.Boats))
	}
}

func TestKrillSpawnInBand(t *testing.T) {
	s := quietSettings()
	s.KrillChance = 1
	s.MaxKrill = 1000
	s.KrillVelocity = Velocity{}
	u := newTestEngine(s, 5)
	w := u.World()
	w.Whale.Pos = Point{X: 0, Y: constants.SurfaceRow}

	for i := 0; i < 300; i++ {
		u.Tick(IntentNone)
	}

	for _, k := range w.Krill {
		if k.Pos.X%constants.CellStepX != 0 {
			t.Errorf("Krill %d on odd column %d", k.ID, k.Pos.X)
		}
		if k.Pos.Y < constants.KrillTopRow || k.Pos.Y >= w.Height {
			t.Errorf("Krill %d outside the spawn band: %v", k.ID, k.Pos)
		}
	}
}
