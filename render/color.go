package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asclock/core"
)

// Color is a foreground color from the bright 16-color set
type Color uint8

const (
	ColorDefault Color = iota // terminal default, no marker emitted
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// sgr holds the bright foreground SGR parameter per color
var sgr = [...]int{
	ColorDefault: 39,
	ColorRed:     91,
	ColorGreen:   92,
	ColorYellow:  93,
	ColorBlue:    94,
	ColorMagenta: 95,
	ColorCyan:    96,
	ColorWhite:   97,
}

var tcellColors = [...]tcell.Color{
	ColorDefault: tcell.ColorDefault,
	ColorRed:     tcell.ColorRed,
	ColorGreen:   tcell.ColorLime,
	ColorYellow:  tcell.ColorYellow,
	ColorBlue:    tcell.ColorBlue,
	ColorMagenta: tcell.ColorFuchsia,
	ColorCyan:    tcell.ColorAqua,
	ColorWhite:   tcell.ColorWhite,
}

var colorNames = [...]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

func (c Color) valid() bool { return int(c) < len(sgr) }

// String returns the color name
func (c Color) String() string {
	if !c.valid() {
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// Marker returns the SGR sequence that switches to c. Empty for ColorDefault.
func (c Color) Marker() string {
	if c == ColorDefault || !c.valid() {
		return ""
	}
	return "\x1b[" + strconv.Itoa(sgr[c]) + "m"
}

// Tcell maps c to the equivalent tcell palette color
func (c Color) Tcell() tcell.Color {
	if !c.valid() {
		return tcell.ColorDefault
	}
	return tcellColors[c]
}

// Reset is the SGR sequence emitted after every colored span
const Reset = "\x1b[0m"

// Palette assigns one color per time segment: hours, minutes, seconds
type Palette [3]Color

// DefaultPalette is green hours, yellow minutes, red seconds
var DefaultPalette = Palette{ColorGreen, ColorYellow, ColorRed}

// Validate requires three distinct, non-default colors
func (p Palette) Validate() error {
	for i, c := range p {
		if c == ColorDefault || !c.valid() {
			return core.Newf(core.CodeConfiguration, "palette slot %d: %s is not a segment color", i, c).
				WithMeta("slot", i)
		}
		for j := 0; j < i; j++ {
			if p[j] == c {
				return core.Newf(core.CodeConfiguration, "palette repeats %s in slots %d and %d", c, j, i).
					WithMeta("slot", i)
			}
		}
	}
	return nil
}

// For returns the color of segment i, cycling past the third
func (p Palette) For(i int) Color {
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}
