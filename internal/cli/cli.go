// Package cli implements the permindex command-line interface.
//
// Commands:
//   - encode:  ordinal → permutation
//   - decode:  permutation → ordinal
//   - range:   ascending enumeration from a start ordinal
//   - shuffle: deterministic permutation from a seed
//   - verify:  parallel round-trip self check over a window of ordinals
//
// Settings come from a TOML file (see internal/config); flags override it.
// --verbose switches the charmbracelet/log logger to debug level.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/permindex/internal/buildinfo"
	"github.com/katalvlaran/permindex/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "permindex",
		Short:             "permindex maps numbers to permutations and back",
		Long:              `permindex addresses permutations by ordinal using the factorial number system: every number below 2^128 names one permutation.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/permindex/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.rangeCommand())
	root.AddCommand(c.shuffleCommand())
	root.AddCommand(c.verifyCommand())

	return root
}

// setup loads the config file and settles the log level before any command runs.
//
// Steps:
//  1. Resolve the config path: --config must exist; the default path may be
//     missing or unresolvable (no HOME), in which case defaults stay.
//  2. Apply the level: --verbose wins over log_level from the file.
//  3. Attach the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if err := c.loadConfig(); err != nil {
		return err
	}

	switch {
	case c.verbose:
		c.SetLogLevel(LogDebug)
	case c.Config.LogLevel != "":
		level, err := log.ParseLevel(c.Config.LogLevel)
		if err != nil {
			return err
		}
		c.SetLogLevel(level)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// loadConfig fills c.Config from the explicit or default config file.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	} else {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config directory, using defaults", "err", err)
			return nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", path, "format", cfg.Format, "length", cfg.Length)
	return nil
}
