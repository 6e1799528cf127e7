package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := opts.buildInfo
			goVersion := info.GoVersion
			if goVersion == "" {
				goVersion = runtime.Version()
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "webperm %s\ncommit: %s\nbuilt: %s\ngo: %s\n",
				info.Version, info.Commit, info.BuildDate, goVersion)
			return err
		},
	}
}
