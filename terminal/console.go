//go:build !windows

package terminal

// EnableVirtualTerminal prepares the console for ANSI output. Unix terminals need nothing.
func EnableVirtualTerminal() error {
	return nil
}
