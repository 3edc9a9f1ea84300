package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/nodebreak/geom"
	"github.com/milk9111/nodebreak/logging"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Name         string               `yaml:"name"`
	Field        FieldSpec            `yaml:"field"`
	Paddle       PaddleSpec           `yaml:"paddle"`
	Ball         BallSpec             `yaml:"ball"`
	Bricks       BricksSpec           `yaml:"bricks"`
	Collision    CollisionSpec        `yaml:"collision"`
	TickInterval time.Duration        `yaml:"tick_interval"`
	GhostTicks   float32              `yaml:"ghost_ticks"`
	Log          logging.Config       `yaml:"log"`
	Colors       map[string]YAMLColor `yaml:"colors"`
}

// FieldSpec describes the dot outline. Width and Height count dots.
type FieldSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// PaddleSpec offsets are measured upward from the bottom edge of the field.
type PaddleSpec struct {
	Kind        string  `yaml:"kind"`
	Offset      float64 `yaml:"offset"`
	StartOffset float64 `yaml:"start_offset"`
}

type BallSpec struct {
	Offset float64 `yaml:"offset"`
	Motion VecSpec `yaml:"motion"`
}

// BricksSpec places the pattern origin relative to the top-left field edges.
type BricksSpec struct {
	Offset VecSpec `yaml:"offset"`
}

type CollisionSpec struct {
	MaxDistance float64 `yaml:"max_distance"`
	Policy      string  `yaml:"policy"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) Vec() geom.Vec2 {
	return geom.V(v.X, v.Y)
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate reports every problem found, joined.
func (s *GameSpec) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...))
	}

	if s.Field.Width < 3 || s.Field.Height < 3 {
		bad("field must be at least 3x3 dots, got %dx%d", s.Field.Width, s.Field.Height)
	}
	if s.Field.Padding < 0 {
		bad("field padding %g is negative", s.Field.Padding)
	}
	if _, err := geom.ParseNodeKind(s.Paddle.Kind); err != nil {
		bad("paddle: %v", err)
	}
	if s.Ball.Motion.Vec().IsZero() {
		bad("ball motion must not be zero")
	}
	if s.Collision.MaxDistance <= 0 {
		bad("collision max_distance must be positive, got %g", s.Collision.MaxDistance)
	}
	if _, err := geom.ParsePolicy(s.Collision.Policy); err != nil {
		bad("collision: %v", err)
	}
	if s.TickInterval < 0 {
		bad("tick_interval %s is negative", s.TickInterval)
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		bad("log: %v", err)
	}
	return errors.Join(errs...)
}

// Color returns the configured colour for name, or fallback.
func (s *GameSpec) Color(name string, fallback color.RGBA) color.RGBA {
	c, ok := s.Colors[name]
	if !ok || c.Color == nil {
		return fallback
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
