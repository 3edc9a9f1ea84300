package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed patterns/*.tengo
var PatternsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk directory whose files take precedence over the embedded
// copies, so specs and patterns can be edited without rebuilding.
const Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadPattern returns the source of a brick pattern script. The .tengo
// extension is optional.
func LoadPattern(name string) ([]byte, error) {
	clean := cleanPatternPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	data, err := PatternsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load pattern %s: %w", name, err)
	}
	return data, nil
}

// PatternNames lists the embedded pattern scripts without extension.
func PatternNames() []string {
	entries, err := PatternsFS.ReadDir("patterns")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	return names
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func cleanPatternPath(path string) string {
	s := cleanPrefabPath(path)
	s = strings.TrimPrefix(s, "patterns/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return "patterns/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
