package breakout

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/component"
	"github.com/milk9111/nodebreak/ecs/system"
	"github.com/milk9111/nodebreak/geom"
	"github.com/milk9111/nodebreak/pattern"
)

var (
	ErrNotInitialized = errors.New("breakout: game not initialized")
	ErrNotRunning     = errors.New("breakout: game not running")
	ErrEmptyLayout    = errors.New("breakout: layout has no bricks")
	ErrInvalidConfig  = errors.New("breakout: invalid config")
)

// Body is a snapshot of a moving node.
type Body struct {
	Entity ecs.Entity
	Pos    geom.Vec2
	Center geom.Vec2
	Motion geom.Vec2
}

// Game owns one round of breakout. Every exported method takes the game lock,
// so a Game may be stepped from one goroutine and observed from another.
type Game struct {
	mu sync.Mutex

	cfg     Config
	layout  []pattern.Brick
	field   Field
	logger  *zap.Logger
	session uuid.UUID

	world     *ecs.World
	scheduler *ecs.Scheduler
	ball      ecs.Entity
	paddle    ecs.Entity

	initialized bool
	running     bool
	tick        int
	events      []ecs.Event
}

// New checks cfg and layout. The world is only populated by Initialize.
func New(cfg Config, layout []pattern.Brick, logger *zap.Logger) (*Game, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}
	if cfg.Field.Width < 3 || cfg.Field.Height < 3 {
		return nil, fmt.Errorf("%w: field must be at least 3x3 dots, got %dx%d", ErrInvalidConfig, cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.BallMotion.IsZero() {
		return nil, fmt.Errorf("%w: ball motion must not be zero", ErrInvalidConfig)
	}
	if cfg.Resolver.MaxDistance <= 0 {
		return nil, fmt.Errorf("%w: max distance must be positive, got %g", ErrInvalidConfig, cfg.Resolver.MaxDistance)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	session := uuid.New()
	return &Game{
		cfg:     cfg,
		layout:  append([]pattern.Brick(nil), layout...),
		field:   NewField(cfg.Field),
		logger:  logger.With(zap.String("session", session.String())),
		session: session,
	}, nil
}

// Initialize builds a fresh world: the field outline, the paddle, the ball
// and one brick per layout entry. Any previous round is discarded.
func (g *Game) Initialize() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := ecs.NewWorld()
	if err := g.spawnField(w); err != nil {
		return err
	}
	paddle, err := g.spawnPaddle(w)
	if err != nil {
		return err
	}
	ball, err := g.spawnBall(w)
	if err != nil {
		return err
	}
	for i, b := range g.layout {
		if err := g.spawnBrick(w, b); err != nil {
			return fmt.Errorf("breakout: brick %d: %w", i, err)
		}
	}

	collision := system.NewCollisionSystem(g.field.Edges(), g.cfg.Resolver, g.logger)
	collision.GhostTicks = g.cfg.GhostTicks
	paddleWidth := g.cfg.PaddleKind.Size().X
	g.scheduler = ecs.NewScheduler(
		system.NewPaddleSystem(g.field.Left, g.field.Right, g.field.Bottom-g.cfg.PaddleOffset),
		system.NewMotionSystem(),
		collision,
		system.NewFadeSystem(),
		system.NewWhiteFlashSystem(),
	)

	g.world = w
	g.ball = ball
	g.paddle = paddle
	g.tick = 0
	g.events = nil
	g.running = false
	g.initialized = true

	g.logger.Info("game initialized",
		zap.Int("bricks", len(g.layout)),
		zap.Int("units", len(g.field.Units)),
		zap.Float64("paddle_width", paddleWidth),
		zap.Stringer("policy", g.cfg.Resolver.Policy),
	)
	return nil
}

func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.initialized {
		return ErrNotInitialized
	}
	if !g.running {
		g.running = true
		g.logger.Info("game started")
	}
	return nil
}

// Stop pauses the round. It is a no-op when the game is not running.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		g.running = false
		g.logger.Info("game stopped", zap.Int("tick", g.tick))
	}
}

// Step advances the round by one tick. A round ends on the step that loses the
// ball or destroys the last brick; losing wins over winning when both happen.
func (g *Game) Step(in Input) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.running {
		return Continue, ErrNotRunning
	}
	if in.Pause {
		g.events = nil
		return Continue, nil
	}

	if p, ok := ecs.Get(g.world, g.paddle, component.PaddleComponent.Kind()); ok {
		p.TargetX = in.TargetX
		p.HasTarget = in.HasTarget
	}

	g.scheduler.Update(g.world)
	g.tick++
	g.events = g.world.Events().Drain()

	lost, destroyed := false, false
	for _, evt := range g.events {
		switch evt.Type {
		case ecs.EventBallLost:
			lost = true
		case ecs.EventBrickDestroyed:
			destroyed = true
		}
	}

	outcome := Continue
	switch {
	case lost:
		outcome = GameLost
	case ecs.Count(g.world, component.BrickComponent.Kind()) == 0:
		outcome = GameWon
	case destroyed:
		outcome = BrickDestroyed
	}

	if outcome.Over() {
		g.finish(outcome)
	}
	return outcome, nil
}

func (g *Game) finish(outcome Outcome) {
	if err := g.world.DestroyEntity(g.ball); err != nil {
		g.logger.Warn("ball already gone", zap.Error(err))
	}
	g.running = false
	g.initialized = false
	g.logger.Info("game over",
		zap.Stringer("outcome", outcome),
		zap.Int("tick", g.tick),
		zap.Int("bricks_left", ecs.Count(g.world, component.BrickComponent.Kind())),
	)
}

func (g *Game) spawnField(w *ecs.World) error {
	look := component.Appearance{Class: geom.KindDot.String(), Color: g.cfg.Color("field", colornames.Gray)}
	for _, pos := range g.field.Units {
		e := w.CreateEntity()
		unitLook := look
		if err := errors.Join(
			ecs.Add(w, e, component.FieldUnitTagComponent.Kind(), &component.FieldUnitTag{}),
			ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}),
			ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Kind: geom.KindDot}),
			ecs.Add(w, e, component.AppearanceComponent.Kind(), &unitLook),
		); err != nil {
			return fmt.Errorf("breakout: field unit: %w", err)
		}
	}
	return nil
}

func (g *Game) spawnPaddle(w *ecs.World) (ecs.Entity, error) {
	kind := g.cfg.PaddleKind
	pos := geom.V(g.field.CenterX()-kind.Size().X/2, g.field.Bottom-g.cfg.PaddleStart)

	e := w.CreateEntity()
	if err := errors.Join(
		ecs.Add(w, e, component.PaddleComponent.Kind(), &component.Paddle{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Kind: kind}),
		ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
			Class: kind.String(),
			Color: g.cfg.Color("paddle", colornames.Goldenrod),
		}),
	); err != nil {
		return 0, fmt.Errorf("breakout: paddle: %w", err)
	}
	return e, nil
}

func (g *Game) spawnBall(w *ecs.World) (ecs.Entity, error) {
	pos := geom.V(g.field.CenterX(), g.field.Bottom-g.cfg.BallOffset)

	e := w.CreateEntity()
	if err := errors.Join(
		ecs.Add(w, e, component.BallTagComponent.Kind(), &component.BallTag{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Kind: geom.KindDot}),
		ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Delta: g.cfg.BallMotion}),
		ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
			Class: geom.KindDot.String(),
			Color: g.cfg.Color("ball", colornames.White),
		}),
	); err != nil {
		return 0, fmt.Errorf("breakout: ball: %w", err)
	}
	return e, nil
}

func (g *Game) spawnBrick(w *ecs.World, b pattern.Brick) error {
	e := w.CreateEntity()
	return errors.Join(
		ecs.Add(w, e, component.BrickComponent.Kind(), &component.Brick{Label: b.Label, Row: b.Row, Class: b.Class}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: b.Pos}),
		ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Kind: geom.KindRectangle}),
		ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
			Class: b.Class,
			Label: b.Label,
			Color: g.cfg.Color(b.Class, colornames.Slategray),
		}),
	)
}

func (g *Game) body(e ecs.Entity) (Body, bool) {
	if g.world == nil {
		return Body{}, false
	}
	t, ok := ecs.Get(g.world, e, component.TransformComponent.Kind())
	if !ok {
		return Body{}, false
	}
	b := Body{Entity: e, Pos: t.Pos, Center: t.Pos}
	if c, ok := ecs.Get(g.world, e, component.ColliderComponent.Kind()); ok {
		b.Center = c.Kind.CenterAt(t.Pos)
	}
	if m, ok := ecs.Get(g.world, e, component.MotionComponent.Kind()); ok {
		b.Motion = m.Delta
	}
	return b, true
}

// Ball reports the ball, or false once it has been removed.
func (g *Game) Ball() (Body, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.body(g.ball)
}

func (g *Game) Paddle() (Body, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.body(g.paddle)
}

func (g *Game) LiveBricks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.world == nil {
		return 0
	}
	return ecs.Count(g.world, component.BrickComponent.Kind())
}

// View runs fn with the world while holding the game lock. fn must not keep
// the world or call back into the game.
func (g *Game) View(fn func(w *ecs.World)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.world == nil || fn == nil {
		return
	}
	fn(g.world)
}

// LastEvents returns the events raised by the most recent step.
func (g *Game) LastEvents() []ecs.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]ecs.Event(nil), g.events...)
}

func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *Game) Initialized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.initialized
}

func (g *Game) Tick() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tick
}

func (g *Game) Session() string {
	return g.session.String()
}

func (g *Game) Field() Field {
	return g.field
}

func (g *Game) Config() Config {
	return g.cfg
}
