// Package term renders a confetti System in a terminal with tcell.
//
// One terminal cell is one canvas unit, so a System driven by this package
// should be configured with pieces and margins that make sense at cell
// scale; the renderer only maps positions to cells and never scales them.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/confetti"
)

const (
	stripRune = '▮'
	dotRune   = '●'
)

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	styles map[confetti.Color]tcell.Style
}

// NewRenderer wraps an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: make(map[confetti.Color]tcell.Style),
	}
}

// Size returns the canvas size in cells.
func (r *Renderer) Size() (width, height float64) {
	w, h := r.screen.Size()
	return float64(w), float64(h)
}

// Draw clears the screen, plots every on-screen descriptor and shows the
// result. Later indices overwrite earlier ones sharing a cell.
func (r *Renderer) Draw(frame []confetti.Descriptor) {
	r.screen.Clear()
	w, h := r.screen.Size()
	for _, d := range frame {
		x, y, ok := cell(d.Position, w, h)
		if !ok {
			continue
		}
		r.screen.SetContent(x, y, shapeRune(d.Shape), nil, r.style(d.Color))
	}
	r.screen.Show()
}

func (r *Renderer) style(c confetti.Color) tcell.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	cr, cg, cb, _ := c.RGBA8()
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
	r.styles[c] = st
	return st
}

// cell maps a canvas position to a screen cell, reporting false when it lies
// outside a w x h screen.
func cell(p confetti.Vec2, w, h int) (x, y int, ok bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return 0, 0, false
	}
	fx, fy := math.Floor(p.X), math.Floor(p.Y)
	if fx < 0 || fy < 0 || fx >= float64(w) || fy >= float64(h) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

func shapeRune(k confetti.ShapeKind) rune {
	if k == confetti.ShapeDot {
		return dotRune
	}
	return stripRune
}

// Run plays sys on screen at fps frames per second until ctx is cancelled or
// the user quits with Esc, q or Ctrl-C. Space toggles the active flag and r
// replays. The screen must already be initialized; Run does not call Fini.
//
// The System is only touched from the goroutine that called Run.
func Run(ctx context.Context, screen tcell.Screen, sys *confetti.System, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	r := NewRenderer(screen)
	sys.Resize(r.Size())

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	active := sys.State() == confetti.StateFalling
	last := time.Now()
	r.Draw(sys.Frame())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				sys.Resize(r.Size())
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					active = !active
					sys.SetActive(active)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					sys.Replay()
				}
			}

		case now := <-ticker.C:
			sys.Update(now.Sub(last).Seconds())
			last = now
			r.Draw(sys.Frame())
		}
	}
}

// NewScreen creates and initializes a terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("confetti: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("confetti: init screen: %w", err)
	}
	return screen, nil
}
