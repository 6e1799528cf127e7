package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/webperm/internal/cli/styles"
	"github.com/bnema/webperm/internal/infrastructure/config"
)

const configDirPerm = 0o755

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	configCmd.AddCommand(newConfigInitCmd(opts), newConfigSchemaCmd(), newConfigPathCmd(opts))
	return configCmd
}

// resolveConfigFile returns the --config override or the XDG location.
func (o *rootOptions) resolveConfigFile() (string, error) {
	if o.configFile != "" {
		return o.configFile, nil
	}
	return config.GetConfigFile()
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration and its JSON schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer := styles.NewConfigRenderer(styles.NewTheme())
			out := cmd.OutOrStdout()

			configFile, err := opts.resolveConfigFile()
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(configFile); statErr == nil && !force {
				_, err = fmt.Fprintln(out, renderer.RenderExists(configFile))
				return err
			}

			if err := os.MkdirAll(filepath.Dir(configFile), configDirPerm); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := config.WriteConfigOrdered(config.DefaultConfig(), configFile); err != nil {
				return err
			}
			schemaFile := filepath.Join(filepath.Dir(configFile), "config.schema.json")
			if err := config.GenerateSchemaFile(schemaFile); err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "%s\n%s\n", renderer.RenderCreated(configFile), renderer.RenderCreated(schemaFile))
			return err
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return initCmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newConfigPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration and data locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer := styles.NewConfigRenderer(styles.NewTheme())

			configFile, err := opts.resolveConfigFile()
			if err != nil {
				return err
			}
			dataDir, err := config.GetDataDir()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n",
				renderer.RenderPath("config", configFile, exists(configFile)),
				renderer.RenderPath("data", dataDir, exists(dataDir)),
			)
			return err
		},
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
