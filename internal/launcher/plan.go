package launcher

import (
	"strings"

	"sst-launcher/internal/config"
)

const StepBuild = "build"

// Invocation is one planned child process
type Invocation struct {
	Step    string   `json:"step"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// CommandLine renders the invocation for display, quoting arguments that
// contain whitespace or are empty.
func (i Invocation) CommandLine() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, quoteArg(i.Command))
	for _, arg := range i.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\n\"") {
		return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
	}
	return arg
}

// Plan is the build invocation followed by one runtime invocation per suite
type Plan struct {
	Build Invocation   `json:"build"`
	Tests []Invocation `json:"tests"`
}

// Invocations returns every invocation in execution order
func (p *Plan) Invocations() []Invocation {
	all := make([]Invocation, 0, len(p.Tests)+1)
	all = append(all, p.Build)
	return append(all, p.Tests...)
}

// BuildPlan lays out the invocations for cfg. Every runtime invocation is
// <assertions flag> <os flags...> <classpath flag> <classpath> <suite>, with
// the suite always last.
func BuildPlan(cfg *config.Config, osFlags []string) *Plan {
	plan := &Plan{
		Build: Invocation{
			Step:    StepBuild,
			Command: cfg.Build.Command,
			Args:    append([]string{}, cfg.Build.Args...),
		},
		Tests: make([]Invocation, 0, len(cfg.Suites)),
	}

	for _, suite := range cfg.Suites {
		args := make([]string, 0, len(osFlags)+4)
		if cfg.Runtime.AssertionsFlag != "" {
			args = append(args, cfg.Runtime.AssertionsFlag)
		}
		args = append(args, osFlags...)
		args = append(args, cfg.Runtime.ClasspathFlag, cfg.Runtime.Classpath, suite)

		plan.Tests = append(plan.Tests, Invocation{
			Step:    suite,
			Command: cfg.Runtime.Command,
			Args:    args,
		})
	}

	return plan
}
