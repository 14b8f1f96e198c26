package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	replModeAuto  = "auto"
	replModeTUI   = "tui"
	replModePlain = "plain"
)

type cliConfig struct {
	REPL  replConfig  `yaml:"repl"`
	Theme themeConfig `yaml:"theme"`
}

type replConfig struct {
	Mode         string `yaml:"mode"`
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`
	HistoryLimit int    `yaml:"history_limit"`
}

type themeConfig struct {
	Accent  string `yaml:"accent"`
	Error   string `yaml:"error"`
	Success string `yaml:"success"`
	Muted   string `yaml:"muted"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		REPL: replConfig{
			Mode:         replModeAuto,
			Prompt:       "> ",
			HistoryFile:  "~/.lox_history",
			HistoryLimit: 1000,
		},
		Theme: themeConfig{
			Accent:  "#3B82F6",
			Error:   "#EF4444",
			Success: "#10B981",
			Muted:   "#6B7280",
		},
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/lox/config.yaml, falling back to
// ~/.config/lox/config.yaml. It returns "" when neither can be resolved.
func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lox", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lox", "config.yaml")
}

// loadConfig reads the configuration at path over the defaults. An empty path
// means the default location, which is allowed to be missing.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *cliConfig) validate() error {
	switch c.REPL.Mode {
	case "":
		c.REPL.Mode = replModeAuto
	case replModeAuto, replModeTUI, replModePlain:
	default:
		return fmt.Errorf("repl.mode must be one of auto, tui, plain (got %q)", c.REPL.Mode)
	}
	if c.REPL.HistoryLimit < 0 {
		return fmt.Errorf("repl.history_limit must not be negative")
	}
	return nil
}

// historyPath expands a leading ~ in the configured history file.
func (c replConfig) historyPath() string {
	path := c.HistoryFile
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
