package pattern

import (
	"context"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/nodebreak/geom"
	"github.com/milk9111/nodebreak/prefabs"
)

var classicClasses = []string{"Grade", "Roto", "Glow", "AddMix", "Write", "Shuffle", "Noise"}

func loadPattern(t *testing.T, name string) []byte {
	t.Helper()
	src, err := prefabs.LoadPattern(name)
	require.NoError(t, err)
	return src
}

func TestGenerateClassic(t *testing.T) {
	bricks, err := Generate(context.Background(), loadPattern(t, "classic"), DefaultParams(geom.V(42, 32), classicClasses))
	require.NoError(t, err)
	require.Len(t, bricks, 70)

	cases := []struct {
		index int
		want  Brick
	}{
		{0, Brick{Pos: geom.V(42, 32), Row: 0, Class: "Grade", Label: "brick_0"}},
		{11, Brick{Pos: geom.V(131, 57), Row: 1, Class: "Roto", Label: "brick_11"}},
		{69, Brick{Pos: geom.V(843, 182), Row: 6, Class: "Noise", Label: "brick_69"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, bricks[c.index])
	}
}

func TestGenerateBundledPatterns(t *testing.T) {
	cases := []struct {
		name    string
		classes []string
		count   int
	}{
		{"pyramid", []string{"Noise", "Shuffle", "Write", "AddMix", "Glow", "Grade"}, 30},
		{"checker", []string{"Roto", "Grade", "Roto", "Grade", "Roto", "Grade"}, 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bricks, err := Generate(context.Background(), loadPattern(t, c.name), DefaultParams(geom.V(42, 32), c.classes))
			require.NoError(t, err)
			assert.Len(t, bricks, c.count)

			labels := make(map[string]bool, len(bricks))
			for _, b := range bricks {
				assert.False(t, labels[b.Label], "duplicate label %s", b.Label)
				labels[b.Label] = true
			}
		})
	}
}

func TestGenerateDefaultsLabels(t *testing.T) {
	script := []byte(`bricks = append(bricks, {x: x, y: y}, {x: x + brick_width, y: y, label: "corner"})`)

	bricks, err := Generate(context.Background(), script, DefaultParams(geom.V(5, 6), nil))
	require.NoError(t, err)
	require.Len(t, bricks, 2)
	assert.Equal(t, "brick_0", bricks[0].Label)
	assert.Equal(t, geom.V(84, 6), bricks[1].Pos)
	assert.Equal(t, "corner", bricks[1].Label)
}

func TestGenerateErrors(t *testing.T) {
	cases := []struct {
		name   string
		script string
		is     error
	}{
		{"compile", `bricks = append(`, nil},
		{"empty", `a := 1`, ErrNoBricks},
		{"not_a_map", `bricks = append(bricks, 1)`, ErrMalformedBrick},
		{"missing_x", `bricks = append(bricks, {y: 1})`, ErrMalformedBrick},
		{"string_y", `bricks = append(bricks, {x: 1, y: "top"})`, ErrMalformedBrick},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Generate(context.Background(), []byte(c.script), DefaultParams(geom.V(0, 0), classicClasses))
			require.Error(t, err)
			if c.is != nil {
				assert.ErrorIs(t, err, c.is)
			}
		})
	}
}

func TestGenerateHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Generate(ctx, []byte(`for { a := 1 }`), DefaultParams(geom.V(0, 0), nil))
	assert.Error(t, err)
}

func TestASCII(t *testing.T) {
	bricks := []Brick{
		{Pos: geom.V(0, 0), Class: "Grade"},
		{Pos: geom.V(100, 20)},
	}

	got := ASCII(bricks, cp.BB{L: 0, B: 0, R: 200, T: 40}, 20)
	want := "+--------------------+\n" +
		"|GGGGGGGG            |\n" +
		"|          ########  |\n" +
		"+--------------------+\n"
	assert.Equal(t, want, got)

	assert.Empty(t, ASCII(bricks, cp.BB{}, 20))
}
