package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"sst-launcher/internal/cli"
	launchererrors "sst-launcher/internal/errors"
)

const (
	exitFailure     = 1
	exitUnsupported = 2
)

// runMain executes the launcher and returns the process exit code
func runMain() int {
	return exitCodeFor(cli.Execute(), os.Stderr)
}

// exitCodeFor maps a run result to the process exit code. A suite's own
// non-zero status is passed through silently; the child already reported it.
func exitCodeFor(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var status *launchererrors.ExitStatusError
	if errors.As(err, &status) {
		return status.Code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	var build *launchererrors.BuildFailedError
	if errors.As(err, &build) && build.ExitCode != 0 {
		return build.ExitCode
	}
	if launchererrors.IsUnsupportedPlatform(err) {
		return exitUnsupported
	}
	return exitFailure
}

func main() {
	exitCode := runMain()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
