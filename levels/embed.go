package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/nodebreak/geom"
)

//go:embed *.yaml
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level")

// Level picks a brick pattern and the node classes for its rows.
type Level struct {
	Name    string   `yaml:"name"`
	Title   string   `yaml:"title"`
	Pattern string   `yaml:"pattern"`
	Classes []string `yaml:"classes"`
	// BallMotion overrides the starting motion from the game spec.
	BallMotion *Motion `yaml:"ball_motion,omitempty"`
}

type Motion struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (m Motion) Vec() geom.Vec2 {
	return geom.V(m.X, m.Y)
}

type index struct {
	Order []string `yaml:"order"`
}

// Names returns the level names in play order.
func Names() ([]string, error) {
	data, err := fs.ReadFile(LevelsFS, "index.yaml")
	if err != nil {
		return nil, fmt.Errorf("read level index: %w", err)
	}
	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("unmarshal level index: %w", err)
	}
	return idx.Order, nil
}

// Next returns the level after name, or false when name is the last one.
func Next(name string) (string, bool, error) {
	names, err := Names()
	if err != nil {
		return "", false, err
	}
	i := slices.Index(names, name)
	if i < 0 {
		return "", false, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
	}
	if i+1 >= len(names) {
		return "", false, nil
	}
	return names[i+1], true, nil
}

func Load(name string) (*Level, error) {
	name = strings.TrimSuffix(name, ".yaml")
	data, err := fs.ReadFile(LevelsFS, name+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
		}
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	if lvl.Pattern == "" {
		return nil, fmt.Errorf("level %s: no pattern", name)
	}
	if len(lvl.Classes) == 0 {
		return nil, fmt.Errorf("level %s: no node classes", name)
	}
	return &lvl, nil
}
