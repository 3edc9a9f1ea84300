package breakout

import "github.com/milk9111/nodebreak/common"

// Input is what the player does during one tick.
type Input struct {
	// TargetX is where the paddle centre should go, in field coordinates.
	TargetX   float64
	HasTarget bool
	// Pause skips the tick without advancing the simulation.
	Pause bool
}

// InputSource produces the input for the next tick.
type InputSource interface {
	Next(g *Game) Input
}

type InputFunc func(g *Game) Input

func (f InputFunc) Next(g *Game) Input {
	return f(g)
}

// Autopilot keeps the paddle under the ball. Offset shifts the contact point
// away from the paddle centre so the ball does not retrace the same path.
// Smoothing in (0, 1] eases the paddle toward the ball; zero means it snaps.
type Autopilot struct {
	Offset    float64
	Smoothing float64

	target float64
	primed bool
}

func (a *Autopilot) Next(g *Game) Input {
	ball, ok := g.Ball()
	if !ok {
		return Input{}
	}
	want := ball.Center.X + a.Offset
	if !a.primed || a.Smoothing <= 0 || a.Smoothing >= 1 {
		a.target = want
		a.primed = true
	} else {
		a.target = common.Lerp(a.target, want, a.Smoothing)
	}
	return Input{TargetX: a.target, HasTarget: true}
}
