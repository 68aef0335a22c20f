package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Span is a run of text in one color
type Span struct {
	Text  string
	Color Color
}

// Line is one row of a frame, left to right
type Line []Span

// Plain returns the line without color markers
func (l Line) Plain() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// ANSI returns the line with a color marker before and a reset after every colored span
func (l Line) ANSI() string {
	var b strings.Builder
	for _, s := range l {
		if s.Text == "" {
			continue
		}
		marker := s.Color.Marker()
		if marker == "" {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(marker)
		b.WriteString(s.Text)
		b.WriteString(Reset)
	}
	return b.String()
}

// Frame is the rendered block for one displayed time string
type Frame struct {
	text  string
	lines []Line
	width int
}

// Text returns the time string this frame was rendered from
func (f *Frame) Text() string { return f.text }

// Height returns the number of lines
func (f *Frame) Height() int { return len(f.lines) }

// Width returns the visual width shared by every line
func (f *Frame) Width() int { return f.width }

// Lines returns the span rows. Callers must not modify them.
func (f *Frame) Lines() []Line { return f.lines }

// PlainLines returns each line without markers
func (f *Frame) PlainLines() []string {
	out := make([]string, len(f.lines))
	for i, l := range f.lines {
		out[i] = l.Plain()
	}
	return out
}

// ANSILines returns each line with embedded, balanced color markers
func (f *Frame) ANSILines() []string {
	out := make([]string, len(f.lines))
	for i, l := range f.lines {
		out[i] = l.ANSI()
	}
	return out
}

// String joins ANSILines with newlines
func (f *Frame) String() string {
	return strings.Join(f.ANSILines(), "\n")
}

// VisualWidth measures s in terminal cells, treating escape sequences as zero-width
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// StripMarkers removes escape sequences from s
func StripMarkers(s string) string {
	return ansi.Strip(s)
}
