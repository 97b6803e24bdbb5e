package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"sst-launcher/internal/common"
	"sst-launcher/internal/config"
	launchererrors "sst-launcher/internal/errors"
	"sst-launcher/internal/platform"
)

// StepResult is the outcome of one spawned child
type StepResult struct {
	Invocation Invocation    `json:"invocation"`
	ExitCode   int           `json:"exit_code"`
	Duration   time.Duration `json:"duration"`
}

// Outcome summarizes a whole run
type Outcome struct {
	RunID    string             `json:"run_id"`
	Host     *platform.HostInfo `json:"host"`
	Platform platform.Platform  `json:"platform"`
	Flags    []string           `json:"flags"`
	Plan     *Plan              `json:"plan"`
	Build    *StepResult        `json:"build,omitempty"`
	Tests    []StepResult       `json:"tests,omitempty"`
	ExitCode int                `json:"exit_code"`
	DryRun   bool               `json:"dry_run,omitempty"`
	// Halt describes why the step after the last recorded one did not
	// complete, e.g. HaltFailedToStart. Empty when the run was not cut short.
	Halt string `json:"halt,omitempty"`
}

const (
	HaltFailedToStart = "failed to start"
	HaltInterrupted   = "interrupted"
)

// Spawned returns how many children the run started
func (o *Outcome) Spawned() int {
	n := len(o.Tests)
	if o.Build != nil {
		n++
	}
	return n
}

// Options adjusts a single run
type Options struct {
	// Platform overrides host detection when non-empty
	Platform platform.Platform
	// DryRun prints the plan to Out instead of spawning anything
	DryRun bool
	Out    io.Writer
}

// Launcher orchestrates the build step and the test-suite invocations
type Launcher struct {
	config   *config.Config
	table    *platform.FlagTable
	executor platform.CommandExecutor
	detect   func(ctx context.Context) *platform.HostInfo
	logger   *common.SafeLogger
}

// NewLauncher creates a launcher for cfg. The flag table is built once here
// and never changes afterward.
func NewLauncher(cfg *config.Config, executor platform.CommandExecutor) *Launcher {
	return &Launcher{
		config:   cfg,
		table:    cfg.FlagTable(),
		executor: executor,
		detect:   platform.DetectHost,
		logger:   common.LauncherLogger,
	}
}

// Run executes the sequence. The returned Outcome is non-nil whenever the
// platform resolved, including when a later step fails, so callers can still
// report what ran.
func (l *Launcher) Run(ctx context.Context, opts Options) (*Outcome, error) {
	runID := uuid.NewString()
	l.logger.SetRunID(runID[:8])
	defer l.logger.SetRunID("")

	host := l.detect(ctx)
	target := host.Platform
	if opts.Platform != "" {
		target = platform.NormalizeOS(opts.Platform.String())
		l.logger.Debug("Platform override %s (host is %s)", target, host.Describe())
	} else {
		l.logger.Debug("Detected host %s", host.Describe())
	}

	flags, err := l.table.Lookup(target)
	if err != nil {
		l.logger.Error("No runtime flags for platform %s", target)
		return nil, fmt.Errorf("failed to resolve runtime flags: %w", err)
	}

	plan := BuildPlan(l.config, flags)
	outcome := &Outcome{
		RunID:    runID,
		Host:     host,
		Platform: target,
		Flags:    flags,
		Plan:     plan,
	}

	if opts.DryRun {
		outcome.DryRun = true
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		checked := make(map[string]bool)
		for _, inv := range plan.Invocations() {
			if _, err := fmt.Fprintln(out, inv.CommandLine()); err != nil {
				return outcome, fmt.Errorf("failed to write plan: %w", err)
			}
			if checked[inv.Command] {
				continue
			}
			checked[inv.Command] = true
			if !l.executor.IsCommandAvailable(inv.Command) {
				fmt.Fprintf(out, "# %s: command not found\n", inv.Command)
			}
		}
		return outcome, nil
	}

	build, err := l.runStep(ctx, plan.Build)
	if err != nil {
		outcome.Halt = haltReason(err)
		return outcome, err
	}
	outcome.Build = build

	if build.ExitCode != 0 {
		if l.config.StrictBuild {
			outcome.ExitCode = build.ExitCode
			return outcome, launchererrors.NewBuildFailedError(plan.Build.CommandLine(), build.ExitCode)
		}
		l.logger.Info("Build exited with code %d, running suites anyway", build.ExitCode)
	}

	for _, inv := range plan.Tests {
		result, err := l.runStep(ctx, inv)
		if err != nil {
			outcome.Halt = haltReason(err)
			outcome.ExitCode = exitCodeFor(outcome.Tests, l.config.AggregateExit)
			return outcome, err
		}
		outcome.Tests = append(outcome.Tests, *result)
	}

	outcome.ExitCode = exitCodeFor(outcome.Tests, l.config.AggregateExit)
	l.logger.Info("Run finished with exit code %d", outcome.ExitCode)
	return outcome, nil
}

func (l *Launcher) runStep(ctx context.Context, inv Invocation) (*StepResult, error) {
	l.logger.Info("Running %s: %s", inv.Step, inv.CommandLine())

	result, err := l.executor.Run(ctx, inv.Command, inv.Args)
	if err != nil {
		if result != nil {
			l.logger.Error("%s interrupted after %v: %v", inv.Step, result.Duration, err)
			return nil, fmt.Errorf("%s interrupted: %w", inv.Step, err)
		}
		l.logger.Error("Could not run %s: %v", inv.Step, err)
		return nil, launchererrors.NewSpawnError(inv.Step, inv.CommandLine(), err)
	}

	l.logger.Debug("%s exited with code %d after %v", inv.Step, result.ExitCode, result.Duration)
	return &StepResult{
		Invocation: inv,
		ExitCode:   result.ExitCode,
		Duration:   result.Duration,
	}, nil
}

func haltReason(err error) string {
	if launchererrors.IsSpawnError(err) {
		return HaltFailedToStart
	}
	return HaltInterrupted
}

// exitCodeFor is the last suite's code, or with aggregate the first non-zero
// code among all suites.
func exitCodeFor(tests []StepResult, aggregate bool) int {
	if len(tests) == 0 {
		return 0
	}
	if aggregate {
		for _, t := range tests {
			if t.ExitCode != 0 {
				return t.ExitCode
			}
		}
		return 0
	}
	return tests[len(tests)-1].ExitCode
}
