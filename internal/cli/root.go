// Package cli implements the animals command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lcrownover/cli-playground/internal/paths"
	"github.com/lcrownover/cli-playground/internal/store"
	"github.com/lcrownover/cli-playground/pkg/animals"
	"github.com/lcrownover/cli-playground/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	root      string
	logLevel  string
	jsonMode  bool
}

// app carries the state of one invocation. PersistentPreRunE fills in
// everything past flags before any subcommand runs.
type app struct {
	fs    afero.Fs
	flags rootFlags

	configDir string
	cfg       types.Config
	logger    *slog.Logger
	store     *store.Store
}

// NewRootCmd creates the top-level "animals" command with global flags
// and all subcommands registered. It operates on the real filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	a := &app{fs: fsys}

	root := &cobra.Command{
		Use:     "animals",
		Short:   "Keep track of dogs and cats",
		Long:    "Animals stores dog and cat records as one JSON file per record\nunder a collection root (default: ./animals).",
		Version: animals.Version,
		// Errors are printed once by Execute.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.root, "root", "", "collection root (default: $(CWD)/animals)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newKindCmd[types.Dog](a))
	root.AddCommand(newKindCmd[types.Cat](a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "animals:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by a command to a process exit status.
// Storage failures are system errors; everything else, including usage
// errors reported by cobra, is a user error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrIO),
		errors.Is(err, types.ErrSerialization),
		errors.Is(err, types.ErrDeserialization):
		return exitSysError
	default:
		return exitUserError
	}
}

// prepare resolves configuration, builds the logger and the record store,
// and creates the collection directories if they are absent.
func (a *app) prepare(cmd *cobra.Command, args []string) error {
	// Skip for commands that never touch the store.
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(a.fs, configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	root, err := paths.ResolveRoot(a.flags.root, v.GetString(cfgKeyRoot))
	if err != nil {
		return fmt.Errorf("resolve collection root: %w", err)
	}

	cfg := types.Config{
		Root:     root,
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: config: %w", types.ErrInvalidArgument, err)
	}

	a.configDir = configDir
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.store = store.New(a.fs, cfg.Root, store.WithLogger(a.logger))

	a.logger.Debug("command started", "command", cmd.CommandPath(), "root", cfg.Root, "config_dir", configDir)
	return a.store.EnsureCollections(types.Kinds()...)
}
