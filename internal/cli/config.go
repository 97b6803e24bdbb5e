package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sst-launcher/internal/common"
	"sst-launcher/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CmdConfig,
		Short: "Manage launcher configuration files",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   CmdInit + " [PATH]",
		Short: "Write the built-in configuration to a file",
		Long: `Write the built-in commands, suites and OS flag table to PATH (default
` + config.DefaultConfigFile + `) as a starting point for --config. A .toml path is
written as TOML, anything else as YAML. An existing file is left alone unless
--force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --%s to overwrite)", path, FlagForce)
				}
			}

			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			common.CLILogger.Debug("Wrote default configuration to %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, FlagForce, "f", false, "Overwrite an existing file")
	return cmd
}
