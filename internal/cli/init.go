package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lcrownover/cli-playground/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Root     string `yaml:"root,omitempty"`
	LogLevel string `yaml:"log_level"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and collection directories",
		Long:  "Create the configuration directory with a default config.yaml, then create\nthe dogs and cats collections under the collection root.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.fs.MkdirAll(a.configDir, 0o755); err != nil {
				return fmt.Errorf("%w: create config directory: %w", types.ErrIO, err)
			}

			// Only an explicit --root is pinned into the new config file.
			cfg := configFile{Root: a.flags.root, LogLevel: a.cfg.LogLevel}
			configPath := filepath.Join(a.configDir, configFileExt)
			if err := writeConfigIfMissing(a.fs, configPath, cfg); err != nil {
				return fmt.Errorf("%w: write config: %w", types.ErrIO, err)
			}

			if err := a.store.EnsureCollections(types.Kinds()...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Animals initialized successfully")
			fmt.Fprintln(out, "  config:", a.configDir)
			fmt.Fprintln(out, "  root:  ", a.store.Root())
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with the given values if the
// file does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(fsys afero.Fs, path string, cfg configFile) error {
	if _, err := fsys.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return afero.WriteFile(fsys, path, data, 0o644)
}
