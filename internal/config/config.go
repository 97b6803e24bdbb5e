package config

import (
	"strings"

	launchererrors "sst-launcher/internal/errors"
	"sst-launcher/internal/platform"
)

// Config describes what the launcher builds and which suites it runs
type Config struct {
	Build         CommandConfig       `yaml:"build" toml:"build"`
	Runtime       RuntimeConfig       `yaml:"runtime" toml:"runtime"`
	Suites        []string            `yaml:"suites" toml:"suites"`
	Flags         map[string][]string `yaml:"flags,omitempty" toml:"flags,omitempty"`
	StrictBuild   bool                `yaml:"strict_build" toml:"strict_build"`
	AggregateExit bool                `yaml:"aggregate_exit" toml:"aggregate_exit"`
}

// CommandConfig is an external command and its arguments
type CommandConfig struct {
	Command string   `yaml:"command" toml:"command"`
	Args    []string `yaml:"args" toml:"args"`
}

// RuntimeConfig describes the JVM invocation shared by every suite
type RuntimeConfig struct {
	Command        string `yaml:"command" toml:"command"`
	AssertionsFlag string `yaml:"assertions_flag" toml:"assertions_flag"`
	ClasspathFlag  string `yaml:"classpath_flag" toml:"classpath_flag"`
	Classpath      string `yaml:"classpath" toml:"classpath"`
}

// DefaultConfig returns the built-in configuration: make jar, then four
// suites against sst.jar.
func DefaultConfig() *Config {
	return &Config{
		Build: CommandConfig{
			Command: DefaultBuildCommand,
			Args:    []string{DefaultBuildTarget},
		},
		Runtime: RuntimeConfig{
			Command:        DefaultRuntimeCommand,
			AssertionsFlag: DefaultAssertionsFlag,
			ClasspathFlag:  DefaultClasspathFlag,
			Classpath:      DefaultArchive,
		},
		Suites: DefaultSuites(),
		Flags:  platform.DefaultFlags(),
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Build.Command) == "" {
		return launchererrors.NewConfigError("build.command", "command is required")
	}
	if strings.TrimSpace(c.Runtime.Command) == "" {
		return launchererrors.NewConfigError("runtime.command", "command is required")
	}
	if strings.TrimSpace(c.Runtime.ClasspathFlag) == "" {
		return launchererrors.NewConfigError("runtime.classpath_flag", "classpath flag is required")
	}
	if strings.TrimSpace(c.Runtime.Classpath) == "" {
		return launchererrors.NewConfigError("runtime.classpath", "classpath is required")
	}
	if len(c.Suites) == 0 {
		return launchererrors.NewConfigError("suites", "at least one suite is required")
	}
	for i, suite := range c.Suites {
		if strings.TrimSpace(suite) == "" {
			return launchererrors.NewConfigError("suites", "suite names cannot be empty")
		}
		for _, other := range c.Suites[:i] {
			if other == suite {
				return launchererrors.NewConfigError("suites", "duplicate suite "+suite)
			}
		}
	}
	if len(c.Flags) == 0 {
		return launchererrors.NewConfigError("flags", "at least one platform entry is required")
	}
	if dups := platform.DuplicatePlatforms(c.Flags); len(dups) > 0 {
		return launchererrors.NewConfigError("flags", "entries name the same platform: "+strings.Join(dups, ", "))
	}
	return nil
}

// FlagTable builds the immutable OS flag table from the config
func (c *Config) FlagTable() *platform.FlagTable {
	return platform.NewFlagTable(c.Flags)
}
