package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bitviz/internal/bits"
	"github.com/san-kum/bitviz/internal/grid"
	"github.com/san-kum/bitviz/internal/viz"
)

const (
	DefaultTheme   = "cyberpunk"
	DefaultClamp   = "saturate"
	DefaultBorder  = "line"
	DefaultBackend = BackendBubbleTea

	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

type Config struct {
	Theme   string `yaml:"theme"`
	Clamp   string `yaml:"clamp"`
	Border  string `yaml:"border"`
	Backend string `yaml:"backend"`
	LogFile string `yaml:"log_file"`
	Preset  string `yaml:"preset,omitempty"`
}

// Flags holds command-line values. A field only replaces the file value when
// its flag was set explicitly.
type Flags struct {
	Theme   string
	Clamp   string
	Border  string
	LogFile string
	Preset  string
}

func DefaultConfig() *Config {
	return &Config{
		Theme:   DefaultTheme,
		Clamp:   DefaultClamp,
		Border:  DefaultBorder,
		Backend: DefaultBackend,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Override copies the flags named by changed over the file values. Flag names
// are theme, clamp, border, log and preset.
func (c *Config) Override(f Flags, changed func(name string) bool) {
	if changed("theme") {
		c.Theme = f.Theme
	}
	if changed("clamp") {
		c.Clamp = f.Clamp
	}
	if changed("border") {
		c.Border = f.Border
	}
	if changed("log") {
		c.LogFile = f.LogFile
	}
	if changed("preset") {
		c.Preset = f.Preset
	}
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if !slices.Contains(viz.ThemeNames(), c.Theme) {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, viz.ThemeNames())
	}
	if _, err := c.ClampPolicy(); err != nil {
		return err
	}
	if _, err := c.Glyphs(); err != nil {
		return err
	}
	switch c.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (available: %s, %s)", c.Backend, BackendBubbleTea, BackendTcell)
	}
	if c.Preset != "" && GetPreset(c.Preset) == nil {
		return fmt.Errorf("unknown preset %q (available: %v)", c.Preset, ListPresets())
	}
	return nil
}

// StartFrame is the frame a session opens with: the configured preset, or
// the startup state when none is set.
func (c *Config) StartFrame() (bits.Frame, error) {
	policy, err := c.ClampPolicy()
	if err != nil {
		return bits.Frame{}, err
	}
	if c.Preset == "" {
		return bits.NewFrame(policy), nil
	}
	p := GetPreset(c.Preset)
	if p == nil {
		return bits.Frame{}, fmt.Errorf("unknown preset %q (available: %v)", c.Preset, ListPresets())
	}
	return p.Frame(policy), nil
}

func (c *Config) ClampPolicy() (bits.ClampPolicy, error) {
	return bits.ParseClampPolicy(c.Clamp)
}

func (c *Config) Glyphs() (grid.Glyphs, error) {
	return grid.GetGlyphs(c.Border)
}
