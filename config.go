package confetti

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the host-supplied settings of a System. Start from
// DefaultConfig; the zero value means zero pieces with the minimum duration.
type Config struct {
	// PieceCount is the number of particles. Negative values render nothing.
	PieceCount int `yaml:"pieceCount"`
	// FallDuration is the per-particle fall time in seconds. Values <= 0 are
	// replaced by MinFallDuration; any positive value is kept.
	FallDuration float64 `yaml:"fallDuration"`
	// Width and Height are the initial canvas size. Zero means not yet known.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Palette overrides the default five colors. Empty keeps the default.
	Palette Palette `yaml:"palette,omitempty"`
	// Easing names the progress curve, see EasingNames. Empty means DefaultEasing.
	Easing string `yaml:"easing,omitempty"`
	// Debug logs normalization and per-frame stats to stderr.
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns 50 pieces falling for 3 seconds with the default
// palette and easing.
func DefaultConfig() Config {
	return Config{
		PieceCount:   DefaultPieceCount,
		FallDuration: DefaultFallDuration,
		Palette:      DefaultPalette(),
		Easing:       DefaultEasing,
	}
}

// Normalize returns a copy with every value brought into range. It never
// fails; an unknown easing falls back to DefaultEasing.
func (c Config) Normalize() Config {
	var notes []string

	if c.PieceCount < 0 {
		notes = append(notes, fmt.Sprintf("pieceCount %d -> 0", c.PieceCount))
		c.PieceCount = 0
	}
	if !(c.FallDuration > 0) || math.IsInf(c.FallDuration, 0) {
		notes = append(notes, fmt.Sprintf("fallDuration %v -> %v", c.FallDuration, MinFallDuration))
		c.FallDuration = MinFallDuration
	}
	if w := sanitizeExtent(c.Width); w != c.Width {
		notes = append(notes, fmt.Sprintf("width %v -> 0", c.Width))
		c.Width = w
	}
	if h := sanitizeExtent(c.Height); h != c.Height {
		notes = append(notes, fmt.Sprintf("height %v -> 0", c.Height))
		c.Height = h
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	} else {
		c.Palette = c.Palette.Clone()
	}
	if _, ok := EasingFunc(c.Easing); !ok {
		notes = append(notes, fmt.Sprintf("easing %q -> %q", c.Easing, DefaultEasing))
		c.Easing = DefaultEasing
	} else if c.Easing == "" {
		c.Easing = DefaultEasing
	}

	if c.Debug && len(notes) > 0 {
		log.Printf("confetti: config normalized: %s", strings.Join(notes, ", "))
	}
	return c
}

// Validate reports configuration values a file author most likely got wrong.
// Systems never require a valid config; see Normalize.
func (c Config) Validate() error {
	if c.PieceCount < 0 {
		return fmt.Errorf("confetti: pieceCount must be >= 0, got %d", c.PieceCount)
	}
	if !(c.FallDuration > 0) {
		return fmt.Errorf("confetti: fallDuration must be > 0, got %v", c.FallDuration)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("confetti: canvas size must be >= 0, got %vx%v", c.Width, c.Height)
	}
	if _, ok := EasingFunc(c.Easing); !ok {
		return fmt.Errorf("confetti: unknown easing %q (want one of %s)",
			c.Easing, strings.Join(EasingNames(), ", "))
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("confetti: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("confetti: failed to read config: %w", err)
	}
	return ParseConfig(data)
}
