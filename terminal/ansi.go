package terminal

// Pre-allocated ANSI sequences
var (
	csiClear      = []byte("\x1b[2J\x1b[3J\x1b[H") // screen, scrollback, home
	csiRIS        = []byte("\x1bc")                // Reset to Initial State (emergency)
	csiSGR0       = []byte("\x1b[0m")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenExit = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	csiAutoWrapOn = []byte("\x1b[?7h")

	bel     = []byte("\a")
	newline = []byte("\n")
)
