// Package glyph holds the base digit bitmaps and integer scaling.
//
// Every base glyph is BaseHeight×BaseWidth. Glyph values are immutable: Scale
// always allocates a new cell grid.
package glyph

import (
	"strings"

	"github.com/lixenwraith/asclock/core"
)

const (
	BaseHeight = 5
	BaseWidth  = 5

	// Ink is the rune drawn for a set cell, Blank for an unset one
	Ink   = '#'
	Blank = ' '

	// MaxScale bounds the total scale factor; a scale-64 glyph is 320 cells square
	MaxScale = 64
)

// Glyph is a fixed grid of ink/blank cells for one character
type Glyph struct {
	char  rune
	scale int
	cells [][]bool // row-major
}

// Char returns the character this glyph draws
func (g Glyph) Char() rune { return g.char }

// Scale returns the cumulative scale factor relative to the base bitmap
func (g Glyph) Scale() int { return g.scale }

// Height returns the row count
func (g Glyph) Height() int { return len(g.cells) }

// Width returns the column count
func (g Glyph) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At reports whether the cell at (row, col) is ink. Out of range is blank.
func (g Glyph) At(row, col int) bool {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return false
	}
	return g.cells[row][col]
}

// Row renders one row as text using Ink and Blank
func (g Glyph) Row(row int) string {
	if row < 0 || row >= len(g.cells) {
		return ""
	}
	var b strings.Builder
	b.Grow(len(g.cells[row]))
	for _, on := range g.cells[row] {
		if on {
			b.WriteByte(Ink)
		} else {
			b.WriteByte(Blank)
		}
	}
	return b.String()
}

// Rows renders every row as text
func (g Glyph) Rows() []string {
	rows := make([]string, len(g.cells))
	for i := range g.cells {
		rows[i] = g.Row(i)
	}
	return rows
}

// Equal reports cell-wise equality, ignoring the scale bookkeeping
func (g Glyph) Equal(other Glyph) bool {
	if g.char != other.char || g.Height() != other.Height() || g.Width() != other.Width() {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// ValidateScale reports whether k is a usable scale factor, 1 through MaxScale
func ValidateScale(k int) error {
	if k < 1 || k > MaxScale {
		return core.Newf(core.CodeInvalidScale, "scale factor must be between 1 and %d, got %d", MaxScale, k).
			WithMeta("scale", k)
	}
	return nil
}

// Scale expands g by k in both axes: each cell becomes a k×k block.
// The resulting total scale may not exceed MaxScale.
func Scale(g Glyph, k int) (Glyph, error) {
	if err := ValidateScale(k); err != nil {
		return Glyph{}, err
	}
	if total := max(g.scale, 1) * k; total > MaxScale {
		return Glyph{}, core.Newf(core.CodeInvalidScale, "total scale %d exceeds %d", total, MaxScale).
			WithMeta("scale", total)
	}

	h, w := g.Height(), g.Width()
	cells := make([][]bool, h*k)
	for r := 0; r < h; r++ {
		row := make([]bool, w*k)
		for c := 0; c < w; c++ {
			on := g.cells[r][c]
			for dx := 0; dx < k; dx++ {
				row[c*k+dx] = on
			}
		}
		for dy := 0; dy < k; dy++ {
			// Rows of one block share no backing array
			cp := make([]bool, len(row))
			copy(cp, row)
			cells[r*k+dy] = cp
		}
	}

	return Glyph{char: g.char, scale: g.scale * k, cells: cells}, nil
}
