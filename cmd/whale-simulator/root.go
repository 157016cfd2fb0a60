package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os/signal"
	"sync"
	"time"

	"github.com/lixenwraith/whale-simulator/audio"
	"github.com/lixenwraith/whale-simulator/constants"
	"github.com/lixenwraith/whale-simulator/engine"
	"github.com/lixenwraith/whale-simulator/input"
	"github.com/lixenwraith/whale-simulator/render"
	"github.com/lixenwraith/whale-simulator/terminal"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// usageError marks invalid invocations; they exit with the usage text
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	tickRateMs     int
	roundLengthSec int
}

func (o options) tickRate() time.Duration {
	return time.Duration(o.tickRateMs) * time.Millisecond
}

func (o options) roundLength() time.Duration {
	return time.Duration(o.roundLengthSec) * time.Second
}

func (o options) validate() error {
	if d := o.tickRate(); d < constants.MinTickRate || d > constants.MaxTickRate {
		return fmt.Errorf("--tick-rate must be between %d and %d milliseconds, got %d",
			constants.MinTickRate.Milliseconds(), constants.MaxTickRate.Milliseconds(), o.tickRateMs)
	}
	if o.roundLengthSec < 0 {
		return fmt.Errorf("--round-length must not be negative, got %d", o.roundLengthSec)
	}
	return nil
}

func newRootCommand() *cobra.Command {
	opts := options{
		tickRateMs:     int(constants.DefaultTickRate.Milliseconds()),
		roundLengthSec: int(constants.DefaultRoundLength.Seconds()),
	}

	cmd := &cobra.Command{
		Use:   "whale-simulator",
		Short: "Be a whale: eat krill, dodge boats and their harpoons",
		Long: "Swim with the arrow keys, WASD or hjkl. Eat krill, stay clear of boats\n" +
			"and harpoons, and keep your krill/death ratio up. Quit with q or Esc.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err}
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return &usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().IntVarP(&opts.tickRateMs, "tick-rate", "t", opts.tickRateMs,
		"milliseconds between simulation ticks")
	cmd.Flags().IntVarP(&opts.roundLengthSec, "round-length", "r", opts.roundLengthSec,
		"length of a round in seconds, 0 to play until you quit")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	return cmd
}

// runGame owns the screen for the duration of one round
func runGame(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	// The screen owns stdout during play; warnings are replayed once it is released
	var logs bytes.Buffer
	logger := log.New(&logs, "whale-simulator: ", log.LstdFlags)
	defer func() {
		if logs.Len() > 0 {
			io.Copy(stderr, &logs)
		}
	}()

	screen, err := terminal.Open(constants.MinFieldWidth, constants.MinFieldHeight)
	if err != nil {
		return errors.Wrap(err, "initialize terminal")
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	sounds := audio.NewSoundManager(logger)
	if err := sounds.Initialize(); err != nil {
		logger.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}

	renderer := render.NewRenderer(screen)
	width, height := renderer.Size()
	world := engine.NewWorld(width, height)
	tick := opts.tickRate()

	reader := input.NewReader(nil)
	reader.Start(screen, func(r any) { crash("EVENT POLLER CRASHED", r) })

	ctx, stop := signal.NotifyContext(ctx, terminal.InterruptSignals()...)
	defer stop()

	loop := &engine.Loop{
		Clock:       engine.NewClock(tick, engine.NewMonotonicTimeProvider()),
		Input:       reader,
		Engine:      engine.NewUpdateEngine(world, engine.NewSettings(tick, width, height), nil),
		Renderer:    renderer,
		Effects:     sounds,
		RoundLength: opts.roundLength(),
	}

	outcome, err := loop.Run(ctx)
	fini()
	if err != nil {
		return err
	}

	logger.Printf("round over (%s) after %d ticks", outcome, loop.Clock.Ticks())
	return render.WriteSummary(stdout, world.Score)
}
