package engine

// Point is a terminal cell coordinate, origin top-left
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Velocity moves an entity by (DX, DY) once every Period ticks.
// A zero Period means the entity never moves.
type Velocity struct {
	DX, DY int
	Period int
}

// EntityID identifies a spawned entity; ids are never reused
type EntityID uint64

// Body is the state shared by every moving entity kind
type Body struct {
	ID  EntityID
	Pos Point
	Vel Velocity

	// Ticks accumulated toward the next step
	acc int
}

// advance moves the body by its velocity over dt ticks
func (b *Body) advance(dt int) {
	if b.Vel.Period <= 0 || dt <= 0 {
		return
	}
	b.acc += dt
	for b.acc >= b.Vel.Period {
		b.acc -= b.Vel.Period
		b.Pos = b.Pos.Add(b.Vel.DX, b.Vel.DY)
	}
}

// Krill is food for the whale
type Krill struct {
	Body
}

// Boat sails the surface and drops harpoons
type Boat struct {
	Body
}

// Harpoon sinks from the surface toward the sea floor
type Harpoon struct {
	Body
}

// Whale is the player entity
type Whale struct {
	Pos  Point
	Dead bool

	// Ticks left before a dead whale respawns
	stun int
}

// StunRemaining returns the ticks left until a dead whale respawns
func (w *Whale) StunRemaining() int {
	return w.stun
}
