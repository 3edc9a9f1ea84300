package breakout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/component"
	"github.com/milk9111/nodebreak/geom"
	"github.com/milk9111/nodebreak/pattern"
)

// inPath sits across the ball's opening climb from the default start.
var inPath = pattern.Brick{Pos: geom.V(560, 400), Class: "Grade", Label: "brick_0"}

// offPath is never reached before the ball drops past the idle paddle.
var offPath = pattern.Brick{Pos: geom.V(42, 32), Class: "Roto", Label: "brick_1"}

func newGame(t *testing.T, layout ...pattern.Brick) *Game {
	t.Helper()
	g, err := New(DefaultConfig(), layout, nil)
	require.NoError(t, err)
	require.NoError(t, g.Initialize())
	require.NoError(t, g.Start())
	return g
}

func stepUntilOver(t *testing.T, g *Game, limit int) Outcome {
	t.Helper()
	for i := 0; i < limit; i++ {
		outcome, err := g.Step(Input{})
		require.NoError(t, err)
		if outcome.Over() {
			return outcome
		}
	}
	t.Fatalf("game still running after %d steps", limit)
	return Continue
}

func TestFieldLayout(t *testing.T) {
	f := NewField(DefaultConfig().Field)

	assert.Equal(t, 12.0, f.Left)
	assert.Equal(t, 12.0, f.Top)
	assert.Equal(t, 1000.0, f.Right)
	assert.Equal(t, 648.0, f.Bottom)
	assert.Equal(t, 506.0, f.CenterX())
	assert.Len(t, f.Units, 47+29+29+47)
	assert.Equal(t, geom.V(42, 32), f.BrickOrigin(geom.V(30, 20)))

	bounds := f.Bounds()
	assert.Equal(t, 12.0, bounds.L)
	assert.Equal(t, 12.0, bounds.B)
	assert.Equal(t, 1000.0, bounds.R)
	assert.Equal(t, 648.0, bounds.T)

	extent := f.Extent()
	assert.InDelta(t, 0.5, extent.L, 1e-9)
	assert.InDelta(t, 1023.5, extent.R, 1e-9)
}

func TestNewRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		layout []pattern.Brick
		want   error
	}{
		{"empty_layout", func(*Config) {}, nil, ErrEmptyLayout},
		{"tiny_field", func(c *Config) { c.Field.Width = 2 }, []pattern.Brick{inPath}, ErrInvalidConfig},
		{"still_ball", func(c *Config) { c.BallMotion = geom.Vec2{} }, []pattern.Brick{inPath}, ErrInvalidConfig},
		{"no_distance", func(c *Config) { c.Resolver.MaxDistance = 0 }, []pattern.Brick{inPath}, ErrInvalidConfig},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			_, err := New(cfg, c.layout, nil)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestLifecycle(t *testing.T) {
	g, err := New(DefaultConfig(), []pattern.Brick{inPath}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, g.Session())

	assert.ErrorIs(t, g.Start(), ErrNotInitialized)
	_, err = g.Step(Input{})
	assert.ErrorIs(t, err, ErrNotRunning)

	require.NoError(t, g.Initialize())
	assert.True(t, g.Initialized())
	assert.False(t, g.Running())
	assert.Equal(t, 1, g.LiveBricks())

	require.NoError(t, g.Start())
	assert.True(t, g.Running())

	g.Stop()
	assert.False(t, g.Running())
	_, err = g.Step(Input{})
	assert.ErrorIs(t, err, ErrNotRunning)
	g.Stop()

	require.NoError(t, g.Start())
	outcome, err := g.Step(Input{Pause: true})
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	assert.Zero(t, g.Tick())
}

func TestInitializeSpawnsNodes(t *testing.T) {
	g := newGame(t, inPath, offPath)

	ball, ok := g.Ball()
	require.True(t, ok)
	assert.Equal(t, geom.V(506, 608), ball.Pos)
	assert.Equal(t, geom.V(512, 614), ball.Center)
	assert.Equal(t, geom.V(1, -3), ball.Motion)

	paddle, ok := g.Paddle()
	require.True(t, ok)
	assert.Equal(t, geom.V(464.5, 623), paddle.Pos)

	g.View(func(w *ecs.World) {
		assert.Equal(t, 152, ecs.Count(w, component.FieldUnitTagComponent.Kind()))
		assert.Equal(t, 2, ecs.Count(w, component.BrickComponent.Kind()))
	})
}

func TestStepMovesPaddleToItsRow(t *testing.T) {
	g := newGame(t, offPath)

	_, err := g.Step(Input{TargetX: 300, HasTarget: true})
	require.NoError(t, err)

	paddle, ok := g.Paddle()
	require.True(t, ok)
	assert.Equal(t, geom.V(258.5, 628), paddle.Pos)

	ball, ok := g.Ball()
	require.True(t, ok)
	assert.Equal(t, geom.V(507, 605), ball.Pos)
}

func TestStepDestroysBrick(t *testing.T) {
	g := newGame(t, inPath, offPath)

	var outcome Outcome
	for outcome == Continue {
		var err error
		outcome, err = g.Step(Input{})
		require.NoError(t, err)
	}

	assert.Equal(t, BrickDestroyed, outcome)
	assert.Equal(t, 64, g.Tick())
	assert.Equal(t, 1, g.LiveBricks())
	assert.True(t, g.Running())

	ball, ok := g.Ball()
	require.True(t, ok)
	assert.Equal(t, geom.V(1, 3), ball.Motion)

	events := g.LastEvents()
	require.Len(t, events, 1)
	data, ok := events[0].Data.(ecs.BrickDestroyed)
	require.True(t, ok)
	assert.Equal(t, "brick_0", data.Label)
	assert.Equal(t, geom.V(0, 1), data.Normal)

	assert.Equal(t, GameLost, stepUntilOver(t, g, 200))
	assert.Equal(t, 140, g.Tick())
}

func TestStepWinsOnLastBrick(t *testing.T) {
	g := newGame(t, inPath)

	assert.Equal(t, GameWon, stepUntilOver(t, g, 100))
	assert.Equal(t, 64, g.Tick())
	assert.Zero(t, g.LiveBricks())
	assert.False(t, g.Running())
	assert.False(t, g.Initialized())

	_, ok := g.Ball()
	assert.False(t, ok)

	_, err := g.Step(Input{})
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestStepLosesBall(t *testing.T) {
	g := newGame(t, offPath)

	assert.Equal(t, GameLost, stepUntilOver(t, g, 500))
	assert.Equal(t, 414, g.Tick())
	assert.Equal(t, 1, g.LiveBricks())
	assert.False(t, g.Running())
	assert.False(t, g.Initialized())

	_, ok := g.Ball()
	assert.False(t, ok)
	assert.ErrorIs(t, g.Start(), ErrNotInitialized)

	require.NoError(t, g.Initialize())
	require.NoError(t, g.Start())
	assert.Equal(t, 1, g.LiveBricks())
	assert.Zero(t, g.Tick())
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		Continue:       "continue",
		BrickDestroyed: "brick-destroyed",
		GameWon:        "won",
		GameLost:       "lost",
		Outcome(42):    "unknown",
	}
	for o, want := range cases {
		assert.Equal(t, want, o.String())
	}
	assert.True(t, GameWon.Over())
	assert.False(t, BrickDestroyed.Over())
}

func TestLoadBundledLevels(t *testing.T) {
	cases := []struct {
		level  string
		bricks int
		motion geom.Vec2
	}{
		{"classic", 70, geom.V(1, -3)},
		{"pyramid", 30, geom.V(-1, -3)},
		{"checker", 30, geom.V(2, -3)},
	}

	for _, c := range cases {
		t.Run(c.level, func(t *testing.T) {
			g, err := Load(context.Background(), c.level, nil)
			require.NoError(t, err)
			require.NoError(t, g.Initialize())
			assert.Equal(t, c.bricks, g.LiveBricks())

			ball, ok := g.Ball()
			require.True(t, ok)
			assert.Equal(t, c.motion, ball.Motion)
		})
	}
}
