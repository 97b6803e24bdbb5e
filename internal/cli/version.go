package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sst-launcher/internal/version"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   CmdVersion,
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if !asJSON {
				fmt.Fprintln(out, info)
				return nil
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal version information: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, FlagJSON, false, "Output version information in JSON format")
	return cmd
}
