package overlay

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/confetti"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the window before the confetti is drawn.
	Background confetti.Color
	// Active is the host's activation flag at startup.
	Active bool
	// ShowFPS draws FPS, TPS and effect state in the top-left corner.
	ShowFPS bool
	// Debug prints per-frame draw stats to stderr.
	Debug bool
	// ScreenshotDir overrides where F12 captures are written.
	ScreenshotDir string
}

// Game is a minimal ebiten.Game hosting one Layer. Space toggles the host's
// active flag, R replays and F12 captures a screenshot.
type Game struct {
	layer  *Layer
	cfg    RunConfig
	active bool
	bg     color.NRGBA
}

// NewGame wraps sys in a Game and feeds it cfg.Active.
func NewGame(sys *confetti.System, cfg RunConfig) *Game {
	l := New(sys)
	l.SetDebugMode(cfg.Debug)
	if cfg.ScreenshotDir != "" {
		l.ScreenshotDir = cfg.ScreenshotDir
	}
	sys.SetActive(cfg.Active)

	r, g, b, a := cfg.Background.RGBA8()
	return &Game{
		layer:  l,
		cfg:    cfg,
		active: cfg.Active,
		bg:     color.NRGBA{R: r, G: g, B: b, A: a},
	}
}

// Layer returns the game's confetti layer.
func (g *Game) Layer() *Layer {
	return g.layer
}

// Update handles the demo keys and advances the effect by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.active = !g.active
		g.layer.System().SetActive(g.active)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.layer.System().Replay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.layer.Capture("confetti")
	}
	g.layer.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw paints the background, the confetti and the optional HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.layer.Draw(screen)
	if g.cfg.ShowFPS {
		sys := g.layer.System()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s %.2fs active=%v",
			ebiten.ActualFPS(), ebiten.ActualTPS(), sys.State(), sys.Elapsed(), g.active))
	}
}

// Layout forwards the window size to the layer and uses it 1:1.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layer.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and plays sys until it is closed.
func Run(sys *confetti.System, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "confetti"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(sys, cfg)); err != nil {
		return fmt.Errorf("confetti: run: %w", err)
	}
	return nil
}
