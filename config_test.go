package confetti

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
pieceCount: 80
fallDuration: 2.5
width: 390
height: 844
easing: inCubic
palette: ["#ff0000", "#00ff00"]
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.PieceCount != 80 || cfg.FallDuration != 2.5 {
		t.Errorf("count/duration = %d/%v, want 80/2.5", cfg.PieceCount, cfg.FallDuration)
	}
	if cfg.Width != 390 || cfg.Height != 844 {
		t.Errorf("canvas = %vx%v, want 390x844", cfg.Width, cfg.Height)
	}
	if cfg.Easing != "inCubic" {
		t.Errorf("Easing = %q, want inCubic", cfg.Easing)
	}
	want := Palette{{R: 1, A: 1}, {G: 1, A: 1}}
	if len(cfg.Palette) != 2 || cfg.Palette[0] != want[0] || cfg.Palette[1] != want[1] {
		t.Errorf("Palette = %v, want %v", cfg.Palette, want)
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("width: 100\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.PieceCount != DefaultPieceCount || cfg.FallDuration != DefaultFallDuration {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if len(cfg.Palette) != 5 {
		t.Errorf("palette len = %d, want 5", len(cfg.Palette))
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "pieceCount: [", "failed to parse config"},
		{"bad color", `palette: ["#zzzzzz"]`, "invalid color"},
		{"palette not a list", `palette: red`, "palette must be a list"},
		{"unknown easing", "easing: outBounce", "unknown easing"},
		{"negative count", "pieceCount: -1", "pieceCount"},
		{"zero duration", "fallDuration: 0", "fallDuration"},
		{"negative canvas", "width: -5", "canvas size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confetti.yaml")
	if err := os.WriteFile(path, []byte("pieceCount: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PieceCount != 12 {
		t.Errorf("PieceCount = %d, want 12", cfg.PieceCount)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{PieceCount: -4, FallDuration: -2, Width: -1, Height: 50, Easing: "nope"}.Normalize()
	if cfg.PieceCount != 0 {
		t.Errorf("PieceCount = %d, want 0", cfg.PieceCount)
	}
	if cfg.FallDuration != MinFallDuration {
		t.Errorf("FallDuration = %v, want %v", cfg.FallDuration, MinFallDuration)
	}
	if cfg.Width != 0 || cfg.Height != 50 {
		t.Errorf("canvas = %vx%v, want 0x50", cfg.Width, cfg.Height)
	}
	if cfg.Easing != DefaultEasing {
		t.Errorf("Easing = %q, want %q", cfg.Easing, DefaultEasing)
	}
	if len(cfg.Palette) != 5 {
		t.Errorf("palette len = %d, want 5", len(cfg.Palette))
	}
}

func TestNormalizeKeepsShortDurations(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.005, 0.005},
		{MinFallDuration, MinFallDuration},
		{0, MinFallDuration},
		{-0.5, MinFallDuration},
		{math.NaN(), MinFallDuration},
		{math.Inf(1), MinFallDuration},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.FallDuration = tt.in
		if got := cfg.Normalize().FallDuration; got != tt.want {
			t.Errorf("Normalize(%v).FallDuration = %v, want %v", tt.in, got, tt.want)
		}
	}

	p := Generator{FallDuration: 0.005}.Generate(0, 10, 10)
	if p.FallDuration != 0.005 {
		t.Errorf("generated FallDuration = %v, want 0.005", p.FallDuration)
	}
}

func TestPaletteYAMLRoundTrip(t *testing.T) {
	in, err := ParseConfig([]byte(`
palette: ["#ff3b30", "#007aff", "#34c759"]
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	if !strings.Contains(string(data), "#007aff") {
		t.Errorf("marshaled config lacks hex palette:\n%s", data)
	}
	out, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig(marshaled): %v\n%s", err, data)
	}
	if len(out.Palette) != len(in.Palette) {
		t.Fatalf("palette len = %d, want %d", len(out.Palette), len(in.Palette))
	}
	for i := range in.Palette {
		if got, want := out.Palette[i].Hex(), in.Palette[i].Hex(); got != want {
			t.Errorf("palette[%d] = %s, want %s", i, got, want)
		}
	}
	if out.PieceCount != in.PieceCount || out.FallDuration != in.FallDuration || out.Easing != in.Easing {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("color = %+v, want orange", c)
	}
	if h := c.Hex(); h != "#ff8000" {
		t.Errorf("Hex = %q, want #ff8000", h)
	}
	if _, err := ParseColor("orange"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestColorRGBA8(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0.5, B: -1, A: 2}.RGBA8()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("RGBA8 = %d %d %d %d, want 255 128 0 255", r, g, b, a)
	}
}
