// Package config loads editor settings from TOML files and TODO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultIDs       = "counter"
	DefaultLogLevel  = "info"
	DefaultTheme     = "auto"
	DefaultCharLimit = 200

	LocalFileName = "todo.toml"
)

type Config struct {
	// IDs selects the item id generator: "counter" or "clock".
	IDs    string `toml:"ids"`
	IDSeed int64  `toml:"id_seed"`

	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	TUI TUIConfig `toml:"tui"`

	// Path is the file the config was read from, if any.
	Path string `toml:"-"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme     string `toml:"theme"`
	CharLimit int    `toml:"char_limit"`

	// Optional palette overrides.
	Accent   *AdaptiveColor `toml:"accent"`
	AddBg    *AdaptiveColor `toml:"add_bg"`
	UpdateBg *AdaptiveColor `toml:"update_bg"`
	DeleteBg *AdaptiveColor `toml:"delete_bg"`
}

type AdaptiveColor struct {
	Light string `toml:"light"`
	Dark  string `toml:"dark"`
}

func Default() Config {
	return Config{
		IDs:      DefaultIDs,
		LogLevel: DefaultLogLevel,
		TUI: TUIConfig{
			Theme:     DefaultTheme,
			CharLimit: DefaultCharLimit,
		},
	}
}

// UnknownKeysError reports keys in a config file that don't map to any setting.
type UnknownKeysError struct {
	Path string
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("%s: unknown config keys: %s", e.Path, strings.Join(e.Keys, ", "))
}

// Load builds the effective config: defaults, then the config file, then env vars.
//
// An explicit path must exist. Without one, ./todo.toml is tried first and then
// $XDG_CONFIG_HOME/todo/config.toml; a missing default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				return applyEnv(cfg)
			}
			return cfg, err
		}
		cfg.Path = path
	}
	return applyEnv(cfg)
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return &UnknownKeysError{Path: path, Keys: keys}
	}
	return nil
}

func findConfigFile() string {
	candidates := []string{LocalFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "todo", "config.toml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func applyEnv(cfg Config) (Config, error) {
	if v := strings.TrimSpace(os.Getenv("TODO_IDS")); v != "" {
		cfg.IDs = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_ID_SEED")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TODO_ID_SEED: %w", err)
		}
		cfg.IDSeed = n
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_TUI_THEME")); v != "" {
		cfg.TUI.Theme = v
	}
	return cfg, nil
}
