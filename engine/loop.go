package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// IntentSource is polled once per tick and must never block
type IntentSource interface {
	Poll() Intent
}

// FrameRenderer draws the world after every tick
type FrameRenderer interface {
	Draw(w *World) error
}

// EffectPlayer reacts to gameplay events, typically with sound
type EffectPlayer interface {
	KrillEaten(n int)
	WhaleDied()
}

// Outcome describes why a run ended
type Outcome uint8

const (
	OutcomeQuit Outcome = iota
	OutcomeTimeUp
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeTimeUp:
		return "time up"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Loop composes the clock, input, update engine and renderer into a run.
// A harpooned whale respawns after its stun; the run ends on quit, when the
// round expires, or when the context is cancelled.
type Loop struct {
	Clock    *Clock
	Input    IntentSource
	Engine   *UpdateEngine
	Renderer FrameRenderer

	// Effects is optional
	Effects EffectPlayer

	// RoundLength of zero means the round never expires
	RoundLength time.Duration
}

// Run drives ticks until the run ends. Render failures are fatal.
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	world := l.Engine.World()

	var deadline time.Time
	if l.RoundLength > 0 {
		deadline = l.Clock.Now().Add(l.RoundLength)
	}

	if err := l.Renderer.Draw(world); err != nil {
		return OutcomeInterrupted, errors.Wrap(err, "draw initial frame")
	}

	for {
		if err := l.Clock.WaitForTick(ctx); err != nil {
			if ctx.Err() != nil {
				return OutcomeInterrupted, nil
			}
			return OutcomeInterrupted, errors.Wrap(err, "wait for tick")
		}

		intent := l.Input.Poll()
		if intent == IntentQuit {
			return OutcomeQuit, nil
		}

		res := l.Engine.Tick(intent)
		l.playEffects(res)

		if err := l.Renderer.Draw(world); err != nil {
			return OutcomeInterrupted, errors.Wrapf(err, "draw frame %d", l.Clock.Ticks())
		}

		if !deadline.IsZero() && !l.Clock.Now().Before(deadline) {
			return OutcomeTimeUp, nil
		}
	}
}

func (l *Loop) playEffects(res TickResult) {
	if l.Effects == nil {
		return
	}
	if res.Eaten > 0 {
		l.Effects.KrillEaten(res.Eaten)
	}
	if res.Died {
		l.Effects.WhaleDied()
	}
}
