package glyph

import (
	"sort"

	"github.com/lixenwraith/asclock/core"
)

// Base bitmaps, MSB-first: bit 4 = column 0
var base = map[rune][BaseHeight]uint8{
	'0': {0b01110, 0b10001, 0b10001, 0b10001, 0b01110},
	'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b01110},
	'2': {0b01110, 0b10001, 0b00010, 0b00100, 0b11111},
	'3': {0b01110, 0b00001, 0b00110, 0b00001, 0b01110},
	'4': {0b10001, 0b10001, 0b11111, 0b00001, 0b00001},
	'5': {0b11111, 0b10000, 0b11110, 0b00001, 0b11110},
	'6': {0b01110, 0b10000, 0b11110, 0b10001, 0b01110},
	'7': {0b11111, 0b00001, 0b00010, 0b00100, 0b00100},
	'8': {0b01110, 0b10001, 0b01110, 0b10001, 0b01110},
	'9': {0b01110, 0b10001, 0b01111, 0b00001, 0b01110},
	':': {0b00000, 0b00100, 0b00000, 0b00100, 0b00000},
	' ': {0b00000, 0b00000, 0b00000, 0b00000, 0b00000},
}

var catalog = buildCatalog()

func buildCatalog() map[rune]Glyph {
	out := make(map[rune]Glyph, len(base))
	for ch, bits := range base {
		cells := make([][]bool, BaseHeight)
		for r := 0; r < BaseHeight; r++ {
			cells[r] = make([]bool, BaseWidth)
			for c := 0; c < BaseWidth; c++ {
				cells[r][c] = bits[r]&(1<<(BaseWidth-1-c)) != 0
			}
		}
		out[ch] = Glyph{char: ch, scale: 1, cells: cells}
	}
	return out
}

// For returns the base glyph for r
func For(r rune) (Glyph, error) {
	g, ok := catalog[r]
	if !ok {
		return Glyph{}, core.Newf(core.CodeUnsupportedCharacter, "no glyph for %q", r).
			WithMeta("rune", string(r))
	}
	return g, nil
}

// Supported reports whether r has a glyph
func Supported(r rune) bool {
	_, ok := catalog[r]
	return ok
}

// Runes lists every supported character in ascending order
func Runes() []rune {
	out := make([]rune, 0, len(catalog))
	for r := range catalog {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
