package terminal

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrClosed is returned by a display used after Fini
var ErrClosed = errors.New("terminal: display closed")

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// HardReset issues RIS after EmergencyReset, wiping the screen
func HardReset(w io.Writer) {
	EmergencyReset(w)
	w.Write(csiRIS)
}
