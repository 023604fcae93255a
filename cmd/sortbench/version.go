package main

import (
	"encoding/json"
	"fmt"

	"github.com/amp-labs/amp-containers/build"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := build.Current()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(info)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, %s)\n",
				appName, info.Version, info.GitCommit, info.GoVersion)

			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full build info as JSON")

	return cmd
}
