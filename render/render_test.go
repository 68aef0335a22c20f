package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asclock/core"
	"github.com/lixenwraith/asclock/glyph"
)

func TestRenderLineCountAndWidth(t *testing.T) {
	tests := []struct {
		text    string
		scale   int
		spacing int
		width   int
	}{
		{"12:34:56", 1, 1, 47},
		{"12:34:56", 2, 1, 94},
		{"00:00:00", 1, 0, 40},
		{"09:59:01", 3, 2, 3 * (3*(5+2+5) + 2*(2+5+2))},
		{"100:00:00", 1, 1, 17 + 7 + 11 + 7 + 11},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_x%d_s%d", tt.text, tt.scale, tt.spacing), func(t *testing.T) {
			f, err := Render(tt.text, tt.scale, tt.spacing, DefaultPalette)
			require.NoError(t, err)

			require.Equal(t, glyph.BaseHeight*tt.scale, f.Height())
			assert.Equal(t, tt.width, f.Width())
			assert.Equal(t, tt.text, f.Text())

			for i, line := range f.ANSILines() {
				assert.Equal(t, tt.width, VisualWidth(line), "ansi line %d", i)
			}
			for i, line := range f.PlainLines() {
				assert.Equal(t, tt.width, len(line), "plain line %d", i)
			}
		})
	}
}

func TestRenderContent(t *testing.T) {
	f, err := Render("00:00:00", 1, 1, DefaultPalette)
	require.NoError(t, err)

	zeros := " ###   ### "
	blank := "       "
	assert.Equal(t, zeros+blank+zeros+blank+zeros, f.PlainLines()[0])

	dots := "   #   "
	mid := "#   # #   #"
	assert.Equal(t, mid+dots+mid+dots+mid, f.PlainLines()[1])
}

func TestRenderColorOrder(t *testing.T) {
	f, err := Render("12:34:56", 1, 1, DefaultPalette)
	require.NoError(t, err)

	green, yellow, red := ColorGreen.Marker(), ColorYellow.Marker(), ColorRed.Marker()
	for i, line := range f.ANSILines() {
		gi := strings.Index(line, green)
		yi := strings.Index(line, yellow)
		ri := strings.Index(line, red)

		require.True(t, gi >= 0 && yi >= 0 && ri >= 0, "line %d missing a color region", i)
		assert.Less(t, gi, yi, "line %d", i)
		assert.Less(t, yi, ri, "line %d", i)
	}

	for _, line := range f.Lines() {
		require.Len(t, line, 5)
		assert.Equal(t, ColorGreen, line[0].Color)
		assert.Equal(t, ColorDefault, line[1].Color)
		assert.Equal(t, ColorYellow, line[2].Color)
		assert.Equal(t, ColorDefault, line[3].Color)
		assert.Equal(t, ColorRed, line[4].Color)
	}
}

func TestRenderBalancedMarkers(t *testing.T) {
	f, err := Render("23:59:59", 2, 1, DefaultPalette)
	require.NoError(t, err)

	for i, line := range f.ANSILines() {
		opens := strings.Count(line, "\x1b[9")
		resets := strings.Count(line, Reset)
		assert.Equal(t, 3, opens, "line %d", i)
		assert.Equal(t, opens, resets, "line %d", i)
		assert.True(t, strings.HasSuffix(line, Reset), "line %d must end reset", i)
	}
}

func TestRenderUnsupportedCharacter(t *testing.T) {
	for _, text := range []string{"A", "12:A4:56", "00:00:00T", "1-2"} {
		f, err := Render(text, 1, 1, DefaultPalette)
		require.Error(t, err, text)
		assert.Nil(t, f)
		assert.True(t, errors.Is(err, core.ErrUnsupportedCharacter), text)
		assert.False(t, core.IsConfiguration(err))
	}
}

func TestNewRendererValidation(t *testing.T) {
	_, err := NewRenderer(0, 1, DefaultPalette)
	assert.True(t, errors.Is(err, core.ErrInvalidScale))

	_, err = NewRenderer(1, -1, DefaultPalette)
	assert.True(t, errors.Is(err, core.ErrInvalidSpacing))

	r, err := NewRenderer(2, 3, DefaultPalette)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Scale())
	assert.Equal(t, 3, r.Spacing())
	assert.Equal(t, 10, r.Height())
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render("01:02:03", 2, 1, DefaultPalette)
	require.NoError(t, err)
	b, err := Render("01:02:03", 2, 1, DefaultPalette)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

func TestDefaultColorSpansHaveNoMarkers(t *testing.T) {
	line := Line{{Text: "##"}, {Text: " : "}, {Text: "#", Color: ColorRed}}
	assert.Equal(t, "## : "+ColorRed.Marker()+"#"+Reset, line.ANSI())
}

func TestZeroPaletteUsesDefault(t *testing.T) {
	zero, err := Render("12:34:56", 1, 1, Palette{})
	require.NoError(t, err)
	def, err := Render("12:34:56", 1, 1, DefaultPalette)
	require.NoError(t, err)

	assert.Equal(t, def.String(), zero.String())
	assert.Contains(t, zero.String(), ColorGreen.Marker())
	assert.Contains(t, zero.String(), ColorRed.Marker())
}

func TestPaletteValidation(t *testing.T) {
	invalid := []Palette{
		{ColorGreen, ColorDefault, ColorRed},
		{ColorGreen, ColorGreen, ColorRed},
		{ColorRed, ColorYellow, ColorRed},
		{ColorGreen, ColorYellow, Color(200)},
	}
	for _, p := range invalid {
		_, err := NewRenderer(1, 1, p)
		require.Error(t, err, "%v", p)
		assert.True(t, errors.Is(err, core.ErrConfiguration), "%v", p)
		assert.True(t, core.IsConfiguration(err))
	}

	assert.NoError(t, DefaultPalette.Validate())
	assert.NoError(t, Palette{ColorBlue, ColorMagenta, ColorCyan}.Validate())
}

func TestStripMarkers(t *testing.T) {
	line := ColorGreen.Marker() + "##" + Reset + "  " + ColorRed.Marker() + "#" + Reset
	assert.Equal(t, "##  #", StripMarkers(line))
	assert.Equal(t, 5, VisualWidth(line))
}

func TestPaletteCycles(t *testing.T) {
	assert.Equal(t, ColorGreen, DefaultPalette.For(0))
	assert.Equal(t, ColorYellow, DefaultPalette.For(1))
	assert.Equal(t, ColorRed, DefaultPalette.For(2))
	assert.Equal(t, ColorGreen, DefaultPalette.For(3))
}

func TestColorMapping(t *testing.T) {
	assert.Equal(t, "\x1b[92m", ColorGreen.Marker())
	assert.Equal(t, "\x1b[93m", ColorYellow.Marker())
	assert.Equal(t, "\x1b[91m", ColorRed.Marker())
	assert.Equal(t, "", ColorDefault.Marker())
	assert.Equal(t, "green", ColorGreen.String())
	assert.NotEqual(t, ColorGreen.Tcell(), ColorRed.Tcell())
}
