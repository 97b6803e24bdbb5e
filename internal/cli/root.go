package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"sst-launcher/internal/common"
	"sst-launcher/internal/config"
	launchererrors "sst-launcher/internal/errors"
	"sst-launcher/internal/launcher"
	"sst-launcher/internal/platform"
)

// newExecutor is swapped out in tests
var newExecutor = platform.NewCommandExecutor

type rootOptions struct {
	configPath  string
	osOverride  string
	dryRun      bool
	strictBuild bool
	aggregate   bool
	summary     bool
	verbose     bool
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   CmdRoot,
		Short: "Build sst.jar and run the SST JUnit suites",
		Long: `sst-launcher runs "make jar" and then launches each SST JUnit suite in its
own JVM, one after another:

  shared.test.All, shared.test.Demo, shared.test.AllNative, sharedx.test.AllX

Extra JVM flags are chosen from the host operating system (Darwin, Linux or
Windows); any other OS is rejected before anything is started. Output from
make and java goes straight to the terminal. The exit code is the exit code
of the last suite.

Run with no arguments to perform the standard sequence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, FlagConfig, "c", "", "YAML or TOML file overriding the built-in commands, suites and flag table")
	flags.StringVar(&opts.osOverride, FlagOS, "", "Use this OS identifier instead of detecting the host")
	flags.BoolVar(&opts.dryRun, FlagDryRun, false, "Print the commands that would run without starting them")
	flags.BoolVar(&opts.strictBuild, FlagStrictBuild, false, "Stop before the suites if the build fails")
	flags.BoolVar(&opts.aggregate, FlagAggregate, false, "Exit with the first failing suite's code instead of the last suite's")
	flags.BoolVar(&opts.summary, FlagSummary, false, "Print a summary table to stderr after the run")
	flags.BoolVarP(&opts.verbose, FlagVerbose, "v", false, "Log each step to stderr")
	flags.StringVar(&opts.logLevel, FlagLogLevel, "", "Minimum stderr log level: debug, info, warn or error")

	cmd.AddCommand(newFlagsCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func runLauncher(cmd *cobra.Command, opts *rootOptions) error {
	if opts.logLevel != "" {
		level, err := common.ParseLogLevel(opts.logLevel)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", FlagLogLevel, err)
		}
		common.SetGlobalLevel(level)
	}
	if opts.verbose {
		common.SetGlobalLevel(common.LogDebug)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.strictBuild {
		cfg.StrictBuild = true
	}
	if opts.aggregate {
		cfg.AggregateExit = true
	}

	l := launcher.NewLauncher(cfg, newExecutor())
	outcome, runErr := l.Run(cmd.Context(), launcher.Options{
		Platform: platform.Platform(opts.osOverride),
		DryRun:   opts.dryRun,
		Out:      cmd.OutOrStdout(),
	})

	if opts.summary && outcome != nil && !outcome.DryRun {
		launcher.WriteSummary(cmd.ErrOrStderr(), outcome, isTerminal(cmd.ErrOrStderr()))
	}

	if runErr != nil {
		return runErr
	}
	if outcome.ExitCode != 0 {
		return launchererrors.NewExitStatusError(outcome.ExitCode)
	}
	return nil
}

func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the root command against os.Args
func Execute() error {
	return newRootCmd().Execute()
}
