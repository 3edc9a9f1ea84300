package breakout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/nodebreak/levels"
	"github.com/milk9111/nodebreak/pattern"
	"github.com/milk9111/nodebreak/prefabs"
)

// NewFromLevel builds a game for lvl. The level's ball motion, when set,
// overrides the one in spec.
func NewFromLevel(ctx context.Context, spec *prefabs.GameSpec, lvl *levels.Level, logger *zap.Logger) (*Game, error) {
	cfg, err := ConfigFromSpec(spec)
	if err != nil {
		return nil, err
	}
	if lvl.BallMotion != nil {
		cfg.BallMotion = lvl.BallMotion.Vec()
	}

	bricks, err := Layout(ctx, cfg, lvl.Pattern, lvl.Classes)
	if err != nil {
		return nil, fmt.Errorf("breakout: level %s: %w", lvl.Name, err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return New(cfg, bricks, logger.With(zap.String("level", lvl.Name)))
}

// Layout runs the named pattern script against the field described by cfg.
func Layout(ctx context.Context, cfg Config, patternName string, classes []string) ([]pattern.Brick, error) {
	script, err := prefabs.LoadPattern(patternName)
	if err != nil {
		return nil, err
	}
	origin := NewField(cfg.Field).BrickOrigin(cfg.BrickOffset)
	return pattern.Generate(ctx, script, pattern.DefaultParams(origin, classes))
}

// Load reads the game spec and the named level and builds the game.
func Load(ctx context.Context, levelName string, logger *zap.Logger) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}
	return NewFromLevel(ctx, spec, lvl, logger)
}
