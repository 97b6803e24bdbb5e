package platform

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"
)

type Result struct {
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// CommandExecutor runs one child process to completion
type CommandExecutor interface {
	// Run starts cmd, waits for it to exit and reports its exit code. A child
	// that ran and exited non-zero is a Result, not an error; the error is
	// reserved for children that could not be started or waited on.
	Run(ctx context.Context, cmd string, args []string) (*Result, error)

	IsCommandAvailable(command string) bool
}

// streamExecutor attaches children to the given streams without capturing them
type streamExecutor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCommandExecutor returns an executor whose children inherit the
// launcher's standard streams
func NewCommandExecutor() CommandExecutor {
	return NewCommandExecutorWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewCommandExecutorWithStreams returns an executor wired to custom streams
func NewCommandExecutorWithStreams(stdin io.Reader, stdout, stderr io.Writer) CommandExecutor {
	return &streamExecutor{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func (e *streamExecutor) Run(ctx context.Context, cmd string, args []string) (*Result, error) {
	execCmd := exec.CommandContext(ctx, cmd, args...)
	execCmd.Stdin = e.stdin
	execCmd.Stdout = e.stdout
	execCmd.Stderr = e.stderr

	start := time.Now()
	if err := execCmd.Start(); err != nil {
		return nil, err
	}

	// Wait releases the process handle and any copy goroutines on every path.
	waitErr := execCmd.Wait()
	result := &Result{
		ExitCode: exitCodeFromState(execCmd.ProcessState),
		Duration: time.Since(start),
	}

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		if _, ok := waitErr.(*exec.ExitError); ok {
			return result, nil
		}
		return result, waitErr
	}

	return result, nil
}

func (e *streamExecutor) IsCommandAvailable(command string) bool {
	return IsCommandAvailable(command)
}

func IsCommandAvailable(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
