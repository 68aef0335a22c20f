package render

import (
	"strings"

	"github.com/lixenwraith/asclock/core"
	"github.com/lixenwraith/asclock/glyph"
)

// Renderer turns colon-delimited time strings into frames at a fixed scale and spacing
type Renderer struct {
	scale   int
	spacing int
	palette Palette
	gap     string
	glyphs  map[rune]glyph.Glyph // pre-scaled catalog
}

// NewRenderer validates the layout parameters and pre-scales the catalog.
// A zero palette selects DefaultPalette.
func NewRenderer(scale, spacing int, palette Palette) (*Renderer, error) {
	if spacing < 0 {
		return nil, core.Newf(core.CodeInvalidSpacing, "spacing must be >= 0, got %d", spacing).
			WithMeta("spacing", spacing)
	}
	if palette == (Palette{}) {
		palette = DefaultPalette
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	runes := glyph.Runes()
	glyphs := make(map[rune]glyph.Glyph, len(runes))
	for _, r := range runes {
		g, err := glyph.For(r)
		if err != nil {
			return nil, err
		}
		s, err := glyph.Scale(g, scale)
		if err != nil {
			return nil, err
		}
		glyphs[r] = s
	}

	return &Renderer{
		scale:   scale,
		spacing: spacing,
		palette: palette,
		gap:     strings.Repeat(" ", spacing*scale),
		glyphs:  glyphs,
	}, nil
}

// Scale returns the glyph scale factor
func (r *Renderer) Scale() int { return r.scale }

// Spacing returns the gap between glyphs in base columns
func (r *Renderer) Spacing() int { return r.spacing }

// Height returns the line count of every frame
func (r *Renderer) Height() int { return glyph.BaseHeight * r.scale }

// Render builds the frame for text. Every rune is checked before any line is built.
func (r *Renderer) Render(text string) (*Frame, error) {
	idx := 0
	for _, ch := range text {
		if _, ok := r.glyphs[ch]; !ok {
			return nil, core.Newf(core.CodeUnsupportedCharacter, "no glyph for %q in %q", ch, text).
				WithMeta("rune", string(ch)).
				WithMeta("index", idx)
		}
		idx++
	}

	segments := strings.Split(text, ":")
	colon := r.glyphs[':']
	height := r.Height()

	lines := make([]Line, height)
	for row := 0; row < height; row++ {
		line := make(Line, 0, 2*len(segments)-1)
		for i, seg := range segments {
			if i > 0 {
				line = append(line, Span{Text: r.gap + colon.Row(row) + r.gap})
			}
			line = append(line, Span{Text: r.segmentRow(seg, row), Color: r.palette.For(i)})
		}
		lines[row] = line
	}

	f := &Frame{text: text, lines: lines}
	if height > 0 {
		f.width = VisualWidth(lines[0].Plain())
	}
	return f, nil
}

// segmentRow joins one row of each glyph in seg with the scaled gap
func (r *Renderer) segmentRow(seg string, row int) string {
	var b strings.Builder
	first := true
	for _, ch := range seg {
		if !first {
			b.WriteString(r.gap)
		}
		first = false
		b.WriteString(r.glyphs[ch].Row(row))
	}
	return b.String()
}

// Render is a one-shot convenience over NewRenderer and Renderer.Render
func Render(text string, scale, spacing int, palette Palette) (*Frame, error) {
	r, err := NewRenderer(scale, spacing, palette)
	if err != nil {
		return nil, err
	}
	return r.Render(text)
}
