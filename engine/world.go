package engine

import (
	"slices"

	"github.com/lixenwraith/whale-simulator/constants"
)

// Bounds is an inclusive rectangle of cell positions
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether p lies inside the bounds
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Collisions lists the entities overlapping the whale at one instant
type Collisions struct {
	Krill    []EntityID
	Boats    []EntityID
	Harpoons []EntityID
}

// Fatal reports whether any hazard overlaps the whale
func (c Collisions) Fatal() bool {
	return len(c.Boats) > 0 || len(c.Harpoons) > 0
}

// World holds every entity of a single game.
// The field size is fixed at creation; resizing the terminal afterwards is not supported.
type World struct {
	Width, Height int

	Whale    Whale
	Krill    []Krill
	Boats    []Boat
	Harpoons []Harpoon
	Score    Score

	nextID EntityID
}

// NewWorld creates a world with the whale placed just below the middle of the field
func NewWorld(width, height int) *World {
	w := &World{
		Width:  width,
		Height: height,
	}

	start := Point{
		X: (width / 2) &^ 1,
		Y: height/2 + constants.WhaleStartOffsetY,
	}
	wb := w.WhaleBounds()
	start.X = min(max(start.X, wb.MinX), wb.MaxX)
	start.Y = min(max(start.Y, wb.MinY), wb.MaxY)
	w.Whale.Pos = start

	return w
}

// Bounds returns the area an entity may occupy; glyphs are two cells wide
// so the last usable column is rounded down to an even one
func (w *World) Bounds() Bounds {
	return Bounds{
		MinX: 0,
		MaxX: max(w.Width-2, 0) &^ 1,
		MinY: 0,
		MaxY: w.Height - 1,
	}
}

// WhaleBounds returns the area the whale may swim in: surface to sea floor
func (w *World) WhaleBounds() Bounds {
	b := w.Bounds()
	b.MinY = constants.SurfaceRow
	return b
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// SpawnKrill adds a krill at the given position
func (w *World) SpawnKrill(at Point, vel Velocity) Krill {
	k := Krill{Body{ID: w.allocID(), Pos: at, Vel: vel}}
	w.Krill = append(w.Krill, k)
	return k
}

// SpawnBoat adds a boat at the given position
func (w *World) SpawnBoat(at Point, vel Velocity) Boat {
	b := Boat{Body{ID: w.allocID(), Pos: at, Vel: vel}}
	w.Boats = append(w.Boats, b)
	return b
}

// SpawnHarpoon adds a harpoon at the given position
func (w *World) SpawnHarpoon(at Point, vel Velocity) Harpoon {
	h := Harpoon{Body{ID: w.allocID(), Pos: at, Vel: vel}}
	w.Harpoons = append(w.Harpoons, h)
	return h
}

// Advance moves krill, boats and harpoons by their velocities over dt ticks.
// The whale has no passive drift.
func (w *World) Advance(dt int) {
	for i := range w.Krill {
		w.Krill[i].advance(dt)
	}
	for i := range w.Boats {
		w.Boats[i].advance(dt)
	}
	for i := range w.Harpoons {
		w.Harpoons[i].advance(dt)
	}
}

// RemoveOffscreen drops every entity that left the field and returns the count
func (w *World) RemoveOffscreen() int {
	b := w.Bounds()
	before := len(w.Krill) + len(w.Boats) + len(w.Harpoons)

	w.Krill = slices.DeleteFunc(w.Krill, func(k Krill) bool { return !b.Contains(k.Pos) })
	w.Boats = slices.DeleteFunc(w.Boats, func(bt Boat) bool { return !b.Contains(bt.Pos) })
	w.Harpoons = slices.DeleteFunc(w.Harpoons, func(h Harpoon) bool { return !b.Contains(h.Pos) })

	return before - len(w.Krill) - len(w.Boats) - len(w.Harpoons)
}

// CheckCollisions reports which entities share the whale's cell
func (w *World) CheckCollisions() Collisions {
	var c Collisions
	pos := w.Whale.Pos

	for _, k := range w.Krill {
		if k.Pos == pos {
			c.Krill = append(c.Krill, k.ID)
		}
	}
	for _, b := range w.Boats {
		if b.Pos == pos {
			c.Boats = append(c.Boats, b.ID)
		}
	}
	for _, h := range w.Harpoons {
		if h.Pos == pos {
			c.Harpoons = append(c.Harpoons, h.ID)
		}
	}
	return c
}

// HazardPositions snapshots the cell of every boat and harpoon
func (w *World) HazardPositions() map[EntityID]Point {
	pos := make(map[EntityID]Point, len(w.Boats)+len(w.Harpoons))
	for _, b := range w.Boats {
		pos[b.ID] = b.Pos
	}
	for _, h := range w.Harpoons {
		pos[h.ID] = h.Pos
	}
	return pos
}

// CheckCrossings reports hazards that swapped cells with the whale since the
// before snapshot, given the whale's cell at snapshot time. Such pairs pass
// through each other and never share a cell at the end of the tick.
func (w *World) CheckCrossings(from Point, before map[EntityID]Point) Collisions {
	var c Collisions
	to := w.Whale.Pos
	if from == to {
		return c
	}

	for _, b := range w.Boats {
		if prev, ok := before[b.ID]; ok && prev == to && b.Pos == from {
			c.Boats = append(c.Boats, b.ID)
		}
	}
	for _, h := range w.Harpoons {
		if prev, ok := before[h.ID]; ok && prev == to && h.Pos == from {
			c.Harpoons = append(c.Harpoons, h.ID)
		}
	}
	return c
}

// EatKrill removes the given krill and returns how many were removed
func (w *World) EatKrill(ids []EntityID) int {
	before := len(w.Krill)
	w.Krill = slices.DeleteFunc(w.Krill, func(k Krill) bool { return slices.Contains(ids, k.ID) })
	return before - len(w.Krill)
}

// RemoveHarpoons removes the given harpoons
func (w *World) RemoveHarpoons(ids []EntityID) {
	w.Harpoons = slices.DeleteFunc(w.Harpoons, func(h Harpoon) bool { return slices.Contains(ids, h.ID) })
}

// MoveWhale applies one step in the intent's direction.
// Steps that would leave the whale bounds are ignored, as is any move while dead.
func (w *World) MoveWhale(intent Intent) bool {
	if w.Whale.Dead {
		return false
	}

	var next Point
	switch intent {
	case IntentUp:
		next = w.Whale.Pos.Add(0, -constants.CellStepY)
	case IntentDown:
		next = w.Whale.Pos.Add(0, constants.CellStepY)
	case IntentLeft:
		next = w.Whale.Pos.Add(-constants.CellStepX, 0)
	case IntentRight:
		next = w.Whale.Pos.Add(constants.CellStepX, 0)
	default:
		return false
	}

	if !w.WhaleBounds().Contains(next) {
		return false
	}
	w.Whale.Pos = next
	return true
}

// KillWhale marks the whale dead for stunTicks ticks
func (w *World) KillWhale(stunTicks int) {
	w.Whale.Dead = true
	w.Whale.stun = max(stunTicks, 1)
}

// ReviveWhale brings a dead whale back where it died
func (w *World) ReviveWhale() {
	w.Whale.Dead = false
	w.Whale.stun = 0
}

// EntityCount returns the number of live krill, boats and harpoons
func (w *World) EntityCount() int {
	return len(w.Krill) + len(w.Boats) + len(w.Harpoons)
}
