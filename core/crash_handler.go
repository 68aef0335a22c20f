package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu       sync.Mutex
	crashFinisher func()
	crashReset    func()

	// Replaced in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashFinisher registers the active display teardown, called before the stack is printed
func SetCrashFinisher(fn func()) {
	crashMu.Lock()
	crashFinisher = fn
	crashMu.Unlock()
}

// SetCrashReset registers the terminal reset run after the display teardown.
// Display teardown does not restore cooked mode after a raw-mode crash.
func SetCrashReset(fn func()) {
	crashMu.Lock()
	crashReset = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fini, reset := crashFinisher, crashReset
	crashMu.Unlock()

	if fini != nil {
		fini()
	}
	if reset != nil {
		reset()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mASCLOCK CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}
