// Package config loads desk layout and runtime settings from TOML
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paperdesk/asset"
)

const (
	appName    = "paperdesk"
	configFile = "paperdesk.toml"

	defaultCellAspect = 2.0
	defaultBackground = "#1e1e28"
)

var (
	ErrNoPapers     = errors.New("config: no papers defined")
	ErrInvalidPaper = errors.New("config: invalid paper")
)

// Config is the full desk configuration
type Config struct {
	// Seed drives the initial paper tilt. 0 means time-based
	Seed uint64 `toml:"seed"`

	// CellAspect is how many surface units one terminal row spans
	CellAspect float64 `toml:"cell_aspect"`

	Audio      bool          `toml:"audio"`
	Background string        `toml:"background"`
	Log        LogConfig     `toml:"log"`
	Papers     []PaperConfig `toml:"paper"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// PaperConfig is the initial layout of one paper, in surface units
type PaperConfig struct {
	Title  string   `toml:"title"`
	X      float64  `toml:"x"`
	Y      float64  `toml:"y"`
	Width  float64  `toml:"width"`
	Height float64  `toml:"height"`
	Color  string   `toml:"color"`
	Lines  []string `toml:"lines"`

	// Rotation pins the initial tilt instead of drawing it at random
	Rotation *float64 `toml:"rotation"`
}

// Result carries a loaded config and where it came from
type Result struct {
	Config *Config
	Source string   // file path, or "builtin"
	Unused []string // keys present in the file but not understood
}

// Default returns the built-in desk
func Default() *Config {
	cfg, _, err := decode(asset.DefaultDeskConfig)
	if err != nil {
		// The embedded config is part of the binary; failing here is a build defect
		panic(fmt.Sprintf("config: built-in desk is invalid: %v", err))
	}
	return cfg
}

// Load reads path, or the XDG location when path is empty, or falls back to the built-in desk
func Load(path string) (*Result, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Result{Config: Default(), Source: "builtin"}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, unused, err := decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &Result{Config: cfg, Source: path, Unused: unused}, nil
}

func decode(data string) (*Config, []string, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var unused []string
	for _, key := range meta.Undecoded() {
		unused = append(unused, key.String())
	}
	return &cfg, unused, nil
}

func (c *Config) applyDefaults() {
	if c.CellAspect <= 0 {
		c.CellAspect = defaultCellAspect
	}
	if c.Background == "" {
		c.Background = defaultBackground
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	for i := range c.Papers {
		p := &c.Papers[i]
		if p.Title == "" {
			p.Title = fmt.Sprintf("Paper %d", i+1)
		}
		if p.Color == "" {
			p.Color = "#f3e5ab"
		}
	}
}

// Validate checks that every paper can be laid out and painted
func (c *Config) Validate() error {
	if len(c.Papers) == 0 {
		return ErrNoPapers
	}
	if tcell.GetColor(c.Background) == tcell.ColorDefault {
		return fmt.Errorf("config: background %q is not a color", c.Background)
	}
	seen := make(map[string]bool, len(c.Papers))
	for i, p := range c.Papers {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: %q (#%d) needs positive width and height", ErrInvalidPaper, p.Title, i+1)
		}
		if tcell.GetColor(p.Color) == tcell.ColorDefault {
			return fmt.Errorf("%w: %q color %q", ErrInvalidPaper, p.Title, p.Color)
		}
		if seen[p.Title] {
			return fmt.Errorf("%w: duplicate title %q", ErrInvalidPaper, p.Title)
		}
		seen[p.Title] = true
	}
	return nil
}

// Encode renders the config as TOML
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores the config at path, creating parent directories
func Write(path string, c *Config) error {
	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the XDG config location (~/.config/paperdesk/paperdesk.toml)
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, configFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configFile
	}
	return filepath.Join(home, ".config", appName, configFile)
}
