package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureCrash swaps the crash output and exit for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, *[]int) {
	t.Helper()

	var out bytes.Buffer
	var codes []int
	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &out
	crashExit = func(code int) { codes = append(codes, code) }

	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashFinisher(nil)
		SetCrashReset(nil)
	})
	return &out, &codes
}

func TestHandleCrashRunsHooksInOrder(t *testing.T) {
	out, codes := captureCrash(t)

	var calls []string
	SetCrashFinisher(func() { calls = append(calls, "finish") })
	SetCrashReset(func() { calls = append(calls, "reset") })

	HandleCrash("boom")

	assert.Equal(t, []string{"finish", "reset"}, calls)
	assert.Equal(t, []int{1}, *codes)
	assert.Contains(t, out.String(), "ASCLOCK CRASHED: boom")
	assert.Contains(t, out.String(), "Stack Trace:")
}

func TestHandleCrashWithoutHooks(t *testing.T) {
	out, codes := captureCrash(t)

	HandleCrash(42)

	assert.Equal(t, []int{1}, *codes)
	assert.Contains(t, out.String(), "ASCLOCK CRASHED: 42")
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	out, codes := captureCrash(t)

	called := false
	SetCrashFinisher(func() { called = true })

	HandleCrash(nil)

	assert.False(t, called)
	assert.Empty(t, *codes)
	assert.Empty(t, out.String())
}
