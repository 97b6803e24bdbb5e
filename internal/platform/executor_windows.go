//go:build windows
// +build windows

package platform

import "os"

func exitCodeFromState(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	return state.ExitCode()
}
