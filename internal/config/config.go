package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bitleak/internal/trail"
)

const (
	DefaultFPS          = 60
	DefaultTheme        = "matrix"
	DefaultCellWidth    = 8.0
	DefaultCellHeight   = 16.0
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultFontSize     = 24.0
)

var (
	ErrInvalidFPS  = errors.New("config: fps must be between 1 and 240")
	ErrInvalidCell = errors.New("config: cell size must be positive")
)

type Config struct {
	Effect  EffectConfig  `yaml:"effect"`
	Display DisplayConfig `yaml:"display"`
	Seed    int64         `yaml:"seed"`
}

// EffectConfig mirrors trail.Tuning field for field.
type EffectConfig struct {
	Glyphs           []string `yaml:"glyphs"`
	MinLifespan      float64  `yaml:"min_lifespan"`
	LifespanJitter   float64  `yaml:"lifespan_jitter"`
	CenteringOffset  float64  `yaml:"centering_offset"`
	HorizontalJitter float64  `yaml:"horizontal_jitter"`
	VerticalDrift    float64  `yaml:"vertical_drift"`
}

type DisplayConfig struct {
	FPS          int     `yaml:"fps"`
	Theme        string  `yaml:"theme"`
	CellWidth    float64 `yaml:"cell_width"`
	CellHeight   float64 `yaml:"cell_height"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	FontSize     float64 `yaml:"font_size"`
}

func DefaultConfig() *Config {
	t := trail.DefaultTuning()
	return &Config{
		Effect: EffectConfig{
			Glyphs:           t.Glyphs,
			MinLifespan:      t.MinLifespan,
			LifespanJitter:   t.LifespanJitter,
			CenteringOffset:  t.CenteringOffset,
			HorizontalJitter: t.HorizontalJitter,
			VerticalDrift:    t.VerticalDrift,
		},
		Display: DisplayConfig{
			FPS:          DefaultFPS,
			Theme:        DefaultTheme,
			CellWidth:    DefaultCellWidth,
			CellHeight:   DefaultCellHeight,
			WindowWidth:  DefaultWindowWidth,
			WindowHeight: DefaultWindowHeight,
			FontSize:     DefaultFontSize,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in the file at path onto c.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Tuning().Validate(); err != nil {
		return err
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: got %d", ErrInvalidFPS, c.Display.FPS)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return ErrInvalidCell
	}
	return nil
}

func (c *Config) Tuning() trail.Tuning {
	glyphs := make([]string, len(c.Effect.Glyphs))
	copy(glyphs, c.Effect.Glyphs)
	return trail.Tuning{
		Glyphs:           glyphs,
		MinLifespan:      c.Effect.MinLifespan,
		LifespanJitter:   c.Effect.LifespanJitter,
		CenteringOffset:  c.Effect.CenteringOffset,
		HorizontalJitter: c.Effect.HorizontalJitter,
		VerticalDrift:    c.Effect.VerticalDrift,
	}
}

// ApplyPreset overwrites the effect section with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
	}
	c.Effect = *p
	c.Effect.Glyphs = append([]string(nil), p.Glyphs...)
	return nil
}
