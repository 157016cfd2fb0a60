package constants

// Layout rows (0-indexed)
const (
	// ScoreRow holds the score line
	ScoreRow = 1

	// SurfaceRow is the wave line; boats sail here and the whale may surface
	SurfaceRow = 3

	// SeaTopRow is where harpoons enter the water
	SeaTopRow = 4

	// KrillTopRow is the first row of the krill spawn band
	KrillTopRow = 5
)

// Glyphs
const (
	GlyphWhale     = "\U0001F40B" // whale
	GlyphWhaleDead = "\U0001F969" // cut of meat
	GlyphKrill     = "\U0001F990" // shrimp
	GlyphBoat      = "\u26F5"     // sailboat
	GlyphHarpoon   = "\u21D3"     // downwards double arrow
	GlyphWave      = "\U0001F30A" // water wave
	GlyphDeath     = "\U0001F480" // skull
	GlyphRatioUp   = "\U0001F4C8" // chart increasing
	GlyphRatioDown = "\U0001F4C9" // chart decreasing
	GlyphInfinity  = "\u221E"
)

// Score line
const (
	// ScoreFieldWidth pads counters so the line does not jitter as numbers grow
	ScoreFieldWidth = 5
)
