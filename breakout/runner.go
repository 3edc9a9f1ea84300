package breakout

import (
	"context"
	"errors"
	"time"

	"github.com/milk9111/nodebreak/ecs"
)

var ErrTickLimit = errors.New("breakout: tick limit reached")

// StepFunc observes every step a Runner takes.
type StepFunc func(tick int, outcome Outcome, events []ecs.Event)

// Runner drives a started game one step at a time on a fixed delay.
type Runner struct {
	Game  *Game
	Input InputSource
	// Interval between steps. Zero steps as fast as possible.
	Interval time.Duration
	// MaxTicks stops the run with ErrTickLimit. Zero means no limit.
	MaxTicks int
	OnStep   StepFunc
}

// Run steps until the game ends, ctx is cancelled or the tick limit is hit.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	if r == nil || r.Game == nil {
		return Continue, ErrNotInitialized
	}

	var tick <-chan time.Time
	if r.Interval > 0 {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for steps := 0; ; steps++ {
		if r.MaxTicks > 0 && steps >= r.MaxTicks {
			return Continue, ErrTickLimit
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return Continue, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return Continue, err
		}

		var in Input
		if r.Input != nil {
			in = r.Input.Next(r.Game)
		}
		outcome, err := r.Game.Step(in)
		if err != nil {
			return outcome, err
		}
		if r.OnStep != nil {
			r.OnStep(r.Game.Tick(), outcome, r.Game.LastEvents())
		}
		if outcome.Over() {
			return outcome, nil
		}
	}
}
