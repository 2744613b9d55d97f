package confetti

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Palette is an ordered list of colors cycled across particles by index.
type Palette []Color

var defaultPalette = Palette{
	{R: 1.0, G: 0.231, B: 0.188, A: 1},   // red
	{R: 0.0, G: 0.478, B: 1.0, A: 1},     // blue
	{R: 0.204, G: 0.780, B: 0.349, A: 1}, // green
	{R: 1.0, G: 0.8, B: 0.0, A: 1},       // yellow
	{R: 0.686, G: 0.322, B: 0.871, A: 1}, // purple
}

// DefaultPalette returns a copy of the built-in five-color palette.
func DefaultPalette() Palette {
	return defaultPalette.Clone()
}

// Clone returns a copy of p.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// At returns the color for particle index i. An empty palette yields the
// default palette's color.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		p = defaultPalette
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// ParseColor decodes a "#rrggbb" hex string into an opaque Color.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("confetti: invalid color %q: %w", s, err)
	}
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// ParsePalette decodes a list of hex strings.
func ParsePalette(hex []string) (Palette, error) {
	p := make(Palette, 0, len(hex))
	for _, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// UnmarshalYAML decodes a palette written as a sequence of hex strings.
func (p *Palette) UnmarshalYAML(value *yaml.Node) error {
	var hex []string
	if err := value.Decode(&hex); err != nil {
		return fmt.Errorf("confetti: palette must be a list of hex colors: %w", err)
	}
	parsed, err := ParsePalette(hex)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes the palette as hex strings.
func (p Palette) MarshalYAML() (any, error) {
	hex := make([]string, len(p))
	for i, c := range p {
		hex[i] = c.Hex()
	}
	return hex, nil
}
