package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/nodebreak/geom"
)

func TestNamesInOrder(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"classic", "pyramid", "checker"}, names)

	for _, name := range names {
		lvl, err := Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, lvl.Name)
		assert.NotEmpty(t, lvl.Classes)
	}
}

func TestLoadClassic(t *testing.T) {
	lvl, err := Load("classic.yaml")
	require.NoError(t, err)
	assert.Equal(t, "classic", lvl.Pattern)
	assert.Equal(t, []string{"Grade", "Roto", "Glow", "AddMix", "Write", "Shuffle", "Noise"}, lvl.Classes)
	assert.Nil(t, lvl.BallMotion)
}

func TestLoadMotionOverride(t *testing.T) {
	lvl, err := Load("pyramid")
	require.NoError(t, err)
	require.NotNil(t, lvl.BallMotion)
	assert.Equal(t, geom.V(-1, -3), lvl.BallMotion.Vec())
}

func TestNext(t *testing.T) {
	cases := []struct {
		name string
		next string
		ok   bool
	}{
		{"classic", "pyramid", true},
		{"pyramid", "checker", true},
		{"checker", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, ok, err := Next(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.next, next)
		})
	}

	_, _, err := Next("bonus")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("bonus")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
