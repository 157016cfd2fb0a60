package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whale-simulator/constants"
	"github.com/lixenwraith/whale-simulator/engine"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// Styles groups the styles used for each element of the frame
type Styles struct {
	Score     tcell.Style
	Wave      tcell.Style
	Whale     tcell.Style
	WhaleDead tcell.Style
	Krill     tcell.Style
	Boat      tcell.Style
	Harpoon   tcell.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Score:     base.Foreground(tcell.ColorWhite).Bold(true),
		Wave:      base.Foreground(tcell.ColorDodgerBlue),
		Whale:     base.Foreground(tcell.ColorSteelBlue),
		WhaleDead: base.Foreground(tcell.ColorRed),
		Krill:     base.Foreground(tcell.ColorPink),
		Boat:      base.Foreground(tcell.ColorWhite),
		Harpoon:   base.Foreground(tcell.ColorSilver).Bold(true),
	}
}

// Renderer draws the world onto a tcell screen.
// The screen size is sampled once; drawing after a resize is undefined.
type Renderer struct {
	screen        tcell.Screen
	width, height int
	styles        Styles
}

// NewRenderer creates a renderer for the screen's current size
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		width:  w,
		height: h,
		styles: DefaultStyles(),
	}
}

// Size returns the dimensions sampled at creation
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Draw clears the screen and redraws every element of the world
func (r *Renderer) Draw(w *engine.World) error {
	if r.screen == nil {
		return errors.New("renderer has no screen")
	}

	r.screen.Clear()

	r.drawScore(w.Score)
	r.drawWaves()

	for _, k := range w.Krill {
		r.drawGlyph(k.Pos, constants.GlyphKrill, r.styles.Krill)
	}
	for _, b := range w.Boats {
		r.drawGlyph(b.Pos, constants.GlyphBoat, r.styles.Boat)
	}
	for _, h := range w.Harpoons {
		r.drawGlyph(h.Pos, constants.GlyphHarpoon, r.styles.Harpoon)
	}

	if w.Whale.Dead {
		r.drawGlyph(w.Whale.Pos, constants.GlyphWhaleDead, r.styles.WhaleDead)
	} else {
		r.drawGlyph(w.Whale.Pos, constants.GlyphWhale, r.styles.Whale)
	}

	r.screen.Show()
	return nil
}

// ScoreLine formats the krill count, death count and ratio
func ScoreLine(s engine.Score) string {
	trend := constants.GlyphRatioDown
	if s.Improving() {
		trend = constants.GlyphRatioUp
	}
	return fmt.Sprintf("  %s  %-*d  %s  %-*d  %s  %s",
		constants.GlyphKrill, constants.ScoreFieldWidth, s.Krill,
		constants.GlyphDeath, constants.ScoreFieldWidth, s.Deaths,
		trend, s.RatioString())
}

func (r *Renderer) drawScore(s engine.Score) {
	r.drawText(0, constants.ScoreRow, ScoreLine(s), r.styles.Score)
}

func (r *Renderer) drawWaves() {
	step := max(runewidth.StringWidth(constants.GlyphWave), 1)
	for x := 0; x+step <= r.width; x += step {
		r.drawText(x, constants.SurfaceRow, constants.GlyphWave, r.styles.Wave)
	}
}

func (r *Renderer) drawGlyph(p engine.Point, glyph string, style tcell.Style) {
	if p.X < 0 || p.Y < 0 || p.X >= r.width || p.Y >= r.height {
		return
	}
	r.drawText(p.X, p.Y, glyph, style)
}

// drawText writes s starting at (x, y), advancing by each rune's display width.
// Returns the column after the last rune drawn.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}
