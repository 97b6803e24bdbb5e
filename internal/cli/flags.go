package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sst-launcher/internal/config"
	"sst-launcher/internal/platform"
)

func newFlagsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   CmdFlags + " [OS]",
		Short: "Show the JVM flags used on each operating system",
		Long: `Print the OS flag table. With an OS argument (Darwin, Linux, Windows) print
only that OS's flags, one per line; an OS missing from the table is an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			table := cfg.FlagTable()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				flags, err := table.Lookup(platform.NormalizeOS(args[0]))
				if err != nil {
					return err
				}
				for _, flag := range flags {
					fmt.Fprintln(out, flag)
				}
				return nil
			}

			for _, name := range table.Platforms() {
				flags, _ := table.Lookup(platform.Platform(name))
				fmt.Fprintf(out, "%-8s %s\n", name, strings.Join(flags, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, FlagConfig, "c", "", "YAML or TOML file overriding the built-in flag table")
	return cmd
}
