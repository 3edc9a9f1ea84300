// Package pattern runs brick layout scripts. A script receives the layout
// origin, the brick footprint and the node classes available for each row, and
// publishes the bricks it wants in a global array named bricks.
package pattern

import (
	"context"
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/nodebreak/geom"
)

var (
	ErrNoBricks       = errors.New("pattern: script produced no bricks")
	ErrMalformedBrick = errors.New("pattern: malformed brick")
)

// modules are the standard library modules a pattern script may import.
var modules = []string{"math", "fmt", "text"}

// Params are the inputs handed to a pattern script.
type Params struct {
	Origin      geom.Vec2
	BrickWidth  float64
	BrickHeight float64
	Classes     []string
}

// DefaultParams uses the rectangle node footprint.
func DefaultParams(origin geom.Vec2, classes []string) Params {
	size := geom.KindRectangle.Size()
	return Params{Origin: origin, BrickWidth: size.X, BrickHeight: size.Y, Classes: classes}
}

// Brick is one placed brick. Pos is the top-left corner.
type Brick struct {
	Pos   geom.Vec2
	Row   int
	Class string
	Label string
}

// Generate compiles and runs script with p and returns the bricks it declared.
// Entries without a label are named brick_<index>.
func Generate(ctx context.Context, script []byte, p Params) ([]Brick, error) {
	s := tengo.NewScript(script)
	s.SetImports(stdlib.GetModuleMap(modules...))

	classes := make([]any, 0, len(p.Classes))
	for _, c := range p.Classes {
		classes = append(classes, c)
	}
	inputs := map[string]any{
		"x":            p.Origin.X,
		"y":            p.Origin.Y,
		"brick_width":  p.BrickWidth,
		"brick_height": p.BrickHeight,
		"node_classes": classes,
		"bricks":       []any{},
	}
	for name, value := range inputs {
		if err := s.Add(name, value); err != nil {
			return nil, fmt.Errorf("pattern: add %s: %w", name, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("pattern: compile: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("pattern: run: %w", err)
	}

	raw := compiled.Get("bricks").Array()
	if len(raw) == 0 {
		return nil, ErrNoBricks
	}

	bricks := make([]Brick, 0, len(raw))
	for i, entry := range raw {
		b, err := decodeBrick(i, entry)
		if err != nil {
			return nil, err
		}
		bricks = append(bricks, b)
	}
	return bricks, nil
}

func decodeBrick(index int, entry any) (Brick, error) {
	m, ok := entry.(map[string]any)
	if !ok {
		return Brick{}, fmt.Errorf("%w: entry %d is %T, not a map", ErrMalformedBrick, index, entry)
	}

	x, okX := number(m["x"])
	y, okY := number(m["y"])
	if !okX || !okY {
		return Brick{}, fmt.Errorf("%w: entry %d needs numeric x and y", ErrMalformedBrick, index)
	}

	b := Brick{Pos: geom.V(x, y), Label: fmt.Sprintf("brick_%d", index)}
	if row, ok := number(m["row"]); ok {
		b.Row = int(row)
	}
	if class, ok := m["node_class"].(string); ok {
		b.Class = class
	}
	if label, ok := m["label"].(string); ok && label != "" {
		b.Label = label
	}
	return b, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
