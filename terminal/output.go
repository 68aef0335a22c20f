package terminal

import (
	"bufio"
	"io"
	"sync"

	"github.com/lixenwraith/asclock/render"
)

// Stream is a line-oriented ANSI display for any writer.
// Every operation flushes so write failures surface at the call that caused them.
type Stream struct {
	mu        sync.Mutex
	writer    *bufio.Writer
	started   bool
	finalized bool
}

// NewStream creates a stream display writing to w
func NewStream(w io.Writer) *Stream {
	return &Stream{
		writer: bufio.NewWriterSize(w, 16384),
	}
}

// Init hides the cursor
func (s *Stream) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.finalized {
		return nil
	}
	s.started = true
	s.writer.Write(csiCursorHide)
	return s.writer.Flush()
}

// Clear wipes the screen and scrollback and homes the cursor
func (s *Stream) Clear() error {
	return s.write(csiClear)
}

// Draw writes each frame line followed by a newline
func (s *Stream) Draw(frame *render.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrClosed
	}
	for _, line := range frame.ANSILines() {
		s.writer.WriteString(line)
		s.writer.Write(newline)
	}
	return s.writer.Flush()
}

// Notice writes msg on its own line after a blank line
func (s *Stream) Notice(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrClosed
	}
	s.writer.Write(newline)
	s.writer.WriteString(msg)
	s.writer.Write(newline)
	return s.writer.Flush()
}

// Alert rings the terminal bell
func (s *Stream) Alert() error {
	return s.write(bel)
}

// Fini resets attributes and shows the cursor. Safe to call multiple times.
func (s *Stream) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return
	}
	s.finalized = true
	s.writer.Write(csiSGR0)
	s.writer.Write(csiCursorShow)
	s.writer.Flush()
}

func (s *Stream) write(seq []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return ErrClosed
	}
	s.writer.Write(seq)
	return s.writer.Flush()
}
