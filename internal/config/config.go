// Package config loads the permindex CLI settings from a TOML file.
//
// Example file ($XDG_CONFIG_HOME/permindex/config.toml):
//
//	format    = "csv"   # "list" ([2 0 3 1]) or "csv" (2,0,3,1)
//	length    = 8       # pad encoded permutations to this length (0 = minimal)
//	workers   = 4       # verify parallelism
//	log_level = "debug"
//
// A missing file is not an error: Load returns Default().
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "permindex"

// Output formats.
const (
	FormatList = "list"
	FormatCSV  = "csv"
)

var (
	// ErrUnknownKey indicates the file contains keys this version does not understand.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds CLI defaults. Command-line flags override every field.
type Config struct {
	Format   string `toml:"format"`
	Length   int    `toml:"length"`
	Workers  int    `toml:"workers"`
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   FormatList,
		Workers:  runtime.GOMAXPROCS(0),
		LogLevel: "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/permindex/config.toml, falling back to
// ~/.config/permindex/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path on top of Default(). A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch c.Format {
	case FormatList, FormatCSV:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if c.Length < 0 {
		return fmt.Errorf("%w: length %d", ErrInvalid, c.Length)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	return nil
}
