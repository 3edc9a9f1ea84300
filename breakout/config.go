package breakout

import (
	"fmt"
	"image/color"
	"time"

	"golang.org/x/image/colornames"

	"github.com/milk9111/nodebreak/geom"
	"github.com/milk9111/nodebreak/prefabs"
)

// FieldConfig describes the dot outline. Width and Height count dots.
type FieldConfig struct {
	Origin  geom.Vec2
	Width   int
	Height  int
	Padding float64
}

// Config holds everything a Game needs besides the brick layout. Offsets are
// measured upward from the bottom edge of the field.
type Config struct {
	Field FieldConfig

	PaddleKind   geom.NodeKind
	PaddleOffset float64
	PaddleStart  float64

	BallOffset float64
	BallMotion geom.Vec2

	// BrickOffset places the layout origin relative to the top-left edges.
	BrickOffset geom.Vec2

	Resolver     geom.Resolver
	GhostTicks   float32
	TickInterval time.Duration

	Colors map[string]color.RGBA
}

func DefaultConfig() Config {
	return Config{
		Field:        FieldConfig{Width: 47, Height: 30, Padding: 10},
		PaddleKind:   geom.KindViewer,
		PaddleOffset: 20,
		PaddleStart:  25,
		BallOffset:   40,
		BallMotion:   geom.V(1, -3),
		BrickOffset:  geom.V(30, 20),
		Resolver:     geom.NewResolver(),
		GhostTicks:   24,
		TickInterval: 16 * time.Millisecond,
	}
}

// ConfigFromSpec converts a validated game spec.
func ConfigFromSpec(spec *prefabs.GameSpec) (Config, error) {
	if spec == nil {
		return DefaultConfig(), nil
	}
	kind, err := geom.ParseNodeKind(spec.Paddle.Kind)
	if err != nil {
		return Config{}, fmt.Errorf("breakout: paddle kind: %w", err)
	}
	policy, err := geom.ParsePolicy(spec.Collision.Policy)
	if err != nil {
		return Config{}, fmt.Errorf("breakout: collision policy: %w", err)
	}

	colors := make(map[string]color.RGBA, len(spec.Colors))
	for name := range spec.Colors {
		colors[name] = spec.Color(name, colornames.White)
	}

	return Config{
		Field: FieldConfig{
			Origin:  geom.V(spec.Field.X, spec.Field.Y),
			Width:   spec.Field.Width,
			Height:  spec.Field.Height,
			Padding: spec.Field.Padding,
		},
		PaddleKind:   kind,
		PaddleOffset: spec.Paddle.Offset,
		PaddleStart:  spec.Paddle.StartOffset,
		BallOffset:   spec.Ball.Offset,
		BallMotion:   spec.Ball.Motion.Vec(),
		BrickOffset:  spec.Bricks.Offset.Vec(),
		Resolver:     geom.Resolver{MaxDistance: spec.Collision.MaxDistance, Policy: policy},
		GhostTicks:   spec.GhostTicks,
		TickInterval: spec.TickInterval,
		Colors:       colors,
	}, nil
}

// Color returns the configured colour for name or fallback.
func (c Config) Color(name string, fallback color.RGBA) color.RGBA {
	if clr, ok := c.Colors[name]; ok {
		return clr
	}
	return fallback
}
