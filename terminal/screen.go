package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/asclock/render"
)

// Screen is a full-screen tcell display that keeps the frame centered.
// In raw mode Ctrl+C arrives as a key event, so the poll loop turns it into a cancel.
type Screen struct {
	screen  tcell.Screen
	cancel  func()
	onCrash func(any)

	mu        sync.Mutex
	frameY    int // top row of the last frame
	frameH    int
	finalized bool
	finiOnce  sync.Once
	done      chan struct{}
}

// NewScreen initialises the terminal screen. cancel is called on Ctrl+C, Esc or q.
// onCrash receives a panic from the event poller after the screen is finalized;
// nil falls back to a local reset and exit.
func NewScreen(cancel func(), onCrash func(any)) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s, cancel, onCrash)
}

func newScreen(s tcell.Screen, cancel func(), onCrash func(any)) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()

	d := &Screen{
		screen:  s,
		cancel:  cancel,
		onCrash: onCrash,
		done:    make(chan struct{}),
	}
	go d.poll()
	return d, nil
}

// poll forwards interrupt keys and resizes until the screen is finalized
func (d *Screen) poll() {
	defer close(d.done)
	defer func() {
		if r := recover(); r != nil {
			d.Fini()
			if d.onCrash != nil {
				d.onCrash(r)
				return
			}
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isInterruptKey(ev) && d.cancel != nil {
				d.cancel()
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

func isInterruptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Clear empties the back buffer; the next Draw shows it
func (d *Screen) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.finalized {
		return ErrClosed
	}
	d.screen.Clear()
	return nil
}

// Draw paints the frame centered on screen and shows it
func (d *Screen) Draw(frame *render.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.finalized {
		return ErrClosed
	}

	w, h := d.screen.Size()
	x0 := max(0, (w-frame.Width())/2)
	// Leave room for a notice line below the frame
	y0 := max(0, (h-frame.Height()-2)/2)

	for row, line := range frame.Lines() {
		x := x0
		for _, span := range line {
			style := tcell.StyleDefault
			if span.Color != render.ColorDefault {
				style = style.Foreground(span.Color.Tcell())
			}
			x = d.put(x, y0+row, span.Text, style)
		}
	}

	d.frameY, d.frameH = y0, frame.Height()
	d.screen.Show()
	return nil
}

// Notice centers msg one blank line below the last frame
func (d *Screen) Notice(msg string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.finalized {
		return ErrClosed
	}

	w, _ := d.screen.Size()
	x := max(0, (w-runewidth.StringWidth(msg))/2)
	d.put(x, d.frameY+d.frameH+1, msg, tcell.StyleDefault.Bold(true))
	d.screen.Show()
	return nil
}

// Alert rings the terminal bell through tcell
func (d *Screen) Alert() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.finalized {
		return ErrClosed
	}
	return d.screen.Beep()
}

// Fini restores the terminal and stops the poll loop. Safe to call multiple times.
func (d *Screen) Fini() {
	d.finiOnce.Do(func() {
		d.mu.Lock()
		d.finalized = true
		d.mu.Unlock()
		d.screen.Fini()
	})
}

// put writes text from (x, y) and returns the column after it
func (d *Screen) put(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		d.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
