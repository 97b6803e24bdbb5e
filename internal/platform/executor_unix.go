//go:build !windows
// +build !windows

package platform

import (
	"os"
	"syscall"
)

// exitCodeFromState reports children killed by a signal as 128+signal, the
// convention shells use.
func exitCodeFromState(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return SIGNAL_EXIT_BASE + int(status.Signal())
	}
	return state.ExitCode()
}
