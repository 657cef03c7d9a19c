// Package config loads the application configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the file looked up under the config directory.
const ConfigFileName = "config.toml"

// defaultConfig is written to the default location on first run so users
// have a file to edit.
const defaultConfig = `# toado configuration

[table]
separate_columns = true
separate_rows = false

[list]
default_verbose = false
`

// Config is the resolved application configuration.
type Config struct {
	Database Database
	Table    Table
	List     List
}

// Database configures where the SQLite file lives.
type Database struct {
	// Path overrides the default database location when non-empty.
	Path string
}

// Table configures list rendering.
type Table struct {
	SeparateColumns bool
	SeparateRows    bool
	Chars           TableChars
}

// TableChars overrides individual border characters. Empty fields keep
// the built-in box-drawing defaults.
type TableChars struct {
	Horizontal         string
	Vertical           string
	UpHorizontal       string
	DownHorizontal     string
	VerticalRight      string
	VerticalLeft       string
	VerticalHorizontal string
	DownRight          string
	DownLeft           string
	UpRight            string
	UpLeft             string
}

// List configures the ls command.
type List struct {
	DefaultVerbose bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Table: Table{SeparateColumns: true},
	}
}

// rawConfig mirrors the TOML document with every field optional, so a
// partial file only overrides what it names.
type rawConfig struct {
	Database *struct {
		Path *string `toml:"path"`
	} `toml:"database"`
	Table *struct {
		SeparateColumns *bool     `toml:"separate_columns"`
		SeparateRows    *bool     `toml:"separate_rows"`
		Characters      *rawChars `toml:"characters"`
	} `toml:"table"`
	List *struct {
		DefaultVerbose *bool `toml:"default_verbose"`
	} `toml:"list"`
}

type rawChars struct {
	Horizontal         *string `toml:"horizontal"`
	Vertical           *string `toml:"vertical"`
	UpHorizontal       *string `toml:"up_horizontal"`
	DownHorizontal     *string `toml:"down_horizontal"`
	VerticalRight      *string `toml:"vertical_right"`
	VerticalLeft       *string `toml:"vertical_left"`
	VerticalHorizontal *string `toml:"vertical_horizontal"`
	DownRight          *string `toml:"down_right"`
	DownLeft           *string `toml:"down_left"`
	UpRight            *string `toml:"up_right"`
	UpLeft             *string `toml:"up_left"`
}

// Load reads the configuration file at path. When path is empty the
// default location ($XDG_CONFIG_HOME/toado/config.toml, falling back to
// ~/.config) is used, and a default file is written there if none
// exists.
func Load(path string) (Config, error) {
	var contents []byte

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		contents = data
	} else {
		dir, err := defaultConfigDir()
		if err != nil {
			return Config{}, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Config{}, fmt.Errorf("create config dir: %w", err)
		}

		file := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(file)
		switch {
		case err == nil:
			contents = data
		case os.IsNotExist(err):
			if err := os.WriteFile(file, []byte(defaultConfig), 0o644); err != nil {
				return Config{}, fmt.Errorf("write default config: %w", err)
			}
			contents = []byte(defaultConfig)
		default:
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return Parse(contents)
}

// Parse decodes TOML contents, applying defaults for everything the file
// leaves unset.
func Parse(contents []byte) (Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(contents, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.Database != nil && raw.Database.Path != nil {
		cfg.Database.Path = *raw.Database.Path
	}

	if raw.Table != nil {
		if raw.Table.SeparateColumns != nil {
			cfg.Table.SeparateColumns = *raw.Table.SeparateColumns
		}
		if raw.Table.SeparateRows != nil {
			cfg.Table.SeparateRows = *raw.Table.SeparateRows
		}
		if c := raw.Table.Characters; c != nil {
			applyChar(&cfg.Table.Chars.Horizontal, c.Horizontal)
			applyChar(&cfg.Table.Chars.Vertical, c.Vertical)
			applyChar(&cfg.Table.Chars.UpHorizontal, c.UpHorizontal)
			applyChar(&cfg.Table.Chars.DownHorizontal, c.DownHorizontal)
			applyChar(&cfg.Table.Chars.VerticalRight, c.VerticalRight)
			applyChar(&cfg.Table.Chars.VerticalLeft, c.VerticalLeft)
			applyChar(&cfg.Table.Chars.VerticalHorizontal, c.VerticalHorizontal)
			applyChar(&cfg.Table.Chars.DownRight, c.DownRight)
			applyChar(&cfg.Table.Chars.DownLeft, c.DownLeft)
			applyChar(&cfg.Table.Chars.UpRight, c.UpRight)
			applyChar(&cfg.Table.Chars.UpLeft, c.UpLeft)
		}
	}

	if raw.List != nil && raw.List.DefaultVerbose != nil {
		cfg.List.DefaultVerbose = *raw.List.DefaultVerbose
	}

	return cfg, nil
}

func applyChar(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func defaultConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toado"), nil
}

// DefaultDataPath returns the default database file location,
// ~/.local/share/toado/toado.db, creating the directory if needed.
func DefaultDataPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".local", "share", "toado")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(dir, "toado.db"), nil
}
