// Package cmd provides Cobra CLI commands for webperm.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webperm/internal/cli"
	"github.com/bnema/webperm/internal/domain/build"
)

// rootOptions is shared by every subcommand of one command tree.
type rootOptions struct {
	configFile string
	buildInfo  build.Info
}

// NewRootCmd builds the webperm command tree.
func NewRootCmd(info build.Info) *cobra.Command {
	opts := &rootOptions{buildInfo: info}

	rootCmd := &cobra.Command{
		Use:   "webperm",
		Short: "Inspect and edit the site permissions of a browser profile",
		Long: `webperm manages the permission decisions a browser profile keeps per origin:
notifications, geolocation, clipboard, local fonts, camera, microphone,
screen sharing and pointer lock.

Decisions are read from and written to the profile's store, selected by
the configuration (JSON file or SQLite database under the profile directory).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default $XDG_CONFIG_HOME/webperm/config.toml)")

	rootCmd.AddCommand(
		newListCmd(opts),
		newQueryCmd(opts),
		newDecisionCmd(opts, decisionGrant),
		newDecisionCmd(opts, decisionDeny),
		newDecisionCmd(opts, decisionReset),
		newConfigCmd(opts),
		newVersionCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute(info build.Info) {
	if err := NewRootCmd(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type appRunFunc func(cmd *cobra.Command, app *cli.App, args []string) error

// withApp opens the profile for the duration of fn and always flushes it afterwards.
func (o *rootOptions) withApp(fn appRunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := cli.NewApp(cli.Options{ConfigFile: o.configFile})
		if err != nil {
			return fmt.Errorf("initialize app: %w", err)
		}
		app.BuildInfo = o.buildInfo

		runErr := fn(cmd, app, args)
		return errors.Join(runErr, app.Close())
	}
}
