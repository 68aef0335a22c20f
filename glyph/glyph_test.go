package glyph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asclock/core"
)

func TestCatalogUniformSize(t *testing.T) {
	runes := Runes()
	require.Len(t, runes, 12)

	for _, r := range runes {
		g, err := For(r)
		require.NoError(t, err)
		assert.Equal(t, BaseHeight, g.Height(), "height of %q", r)
		assert.Equal(t, BaseWidth, g.Width(), "width of %q", r)
		assert.Equal(t, 1, g.Scale())
		assert.Equal(t, r, g.Char())
	}
}

func TestForMatchesArt(t *testing.T) {
	tests := []struct {
		char rune
		rows []string
	}{
		{'0', []string{" ### ", "#   #", "#   #", "#   #", " ### "}},
		{'4', []string{"#   #", "#   #", "#####", "    #", "    #"}},
		{'9', []string{" ### ", "#   #", " ####", "    #", " ### "}},
		{':', []string{"     ", "  #  ", "     ", "  #  ", "     "}},
		{' ', []string{"     ", "     ", "     ", "     ", "     "}},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			g, err := For(tt.char)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows())
		})
	}
}

func TestForUnsupported(t *testing.T) {
	for _, r := range []rune{'A', '-', '.', 'T', '\n'} {
		_, err := For(r)
		require.Error(t, err, "rune %q", r)
		assert.True(t, errors.Is(err, core.ErrUnsupportedCharacter))
		assert.False(t, Supported(r))
	}
}

func TestScaleDimensions(t *testing.T) {
	for _, r := range Runes() {
		g, err := For(r)
		require.NoError(t, err)

		for k := 1; k <= 4; k++ {
			s, err := Scale(g, k)
			require.NoError(t, err)
			assert.Equal(t, BaseHeight*k, s.Height(), "%q x%d", r, k)
			assert.Equal(t, BaseWidth*k, s.Width(), "%q x%d", r, k)
			assert.Equal(t, k, s.Scale())

			// Re-scaling by one is the identity
			same, err := Scale(s, 1)
			require.NoError(t, err)
			assert.True(t, s.Equal(same), "%q x%d rescaled by 1", r, k)
		}
	}
}

func TestScaleBlocks(t *testing.T) {
	g, err := For('1')
	require.NoError(t, err)

	s, err := Scale(g, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"    ##    ",
		"    ##    ",
		"  ####    ",
		"  ####    ",
		"    ##    ",
		"    ##    ",
		"    ##    ",
		"    ##    ",
		"  ######  ",
		"  ######  ",
	}, s.Rows())

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					assert.Equal(t, g.At(r, c), s.At(r*2+dy, c*2+dx))
				}
			}
		}
	}
}

func TestScaleInvalid(t *testing.T) {
	g, err := For('8')
	require.NoError(t, err)

	for _, k := range []int{0, -1, -10, MaxScale + 1, 100000, math.MaxInt / 4} {
		_, err := Scale(g, k)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidScale))
		assert.True(t, core.IsConfiguration(err))
	}
}

func TestScaleUpperBound(t *testing.T) {
	g, err := For('1')
	require.NoError(t, err)

	s, err := Scale(g, MaxScale)
	require.NoError(t, err)
	assert.Equal(t, BaseHeight*MaxScale, s.Height())
	assert.Equal(t, BaseWidth*MaxScale, s.Width())

	// Rescaling counts against the same cap
	half, err := Scale(g, MaxScale/2)
	require.NoError(t, err)
	_, err = Scale(half, 3)
	assert.True(t, errors.Is(err, core.ErrInvalidScale))

	assert.NoError(t, ValidateScale(1))
	assert.NoError(t, ValidateScale(MaxScale))
	assert.True(t, errors.Is(ValidateScale(MaxScale+1), core.ErrInvalidScale))
}

func TestScaleDoesNotAlias(t *testing.T) {
	g, err := For('0')
	require.NoError(t, err)

	s, err := Scale(g, 3)
	require.NoError(t, err)
	s.cells[0][0] = !s.cells[0][0]

	assert.NotEqual(t, s.cells[0][0], s.cells[1][0])
	assert.False(t, g.At(0, 0))
}

func TestAtOutOfRange(t *testing.T) {
	g, err := For('8')
	require.NoError(t, err)

	assert.False(t, g.At(-1, 0))
	assert.False(t, g.At(0, BaseWidth))
	assert.False(t, g.At(BaseHeight, 0))
	assert.Equal(t, "", g.Row(BaseHeight))
}
