// Package overlay draws a confetti System onto an Ebitengine image.
//
// A Layer is meant to sit on top of a game's own rendering: call Layout with
// the screen size, Update once per tick and Draw after everything else. It
// reads no input, so it never blocks interaction with what lies beneath.
package overlay

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/confetti"
)

// Layer renders the current frame of a confetti System.
type Layer struct {
	sys   *confetti.System
	debug bool

	// ScreenshotDir is where Capture writes PNG files.
	ScreenshotDir string

	pts             []confetti.Vec2
	verts           []ebiten.Vertex
	inds            []uint32
	screenshotQueue []string
	captures        int
}

// drawStats holds per-frame metrics, only collected in debug mode.
type drawStats struct {
	buildTime time.Duration
	drawn     int
	culled    int
	vertices  int
}

// New creates a Layer for sys.
func New(sys *confetti.System) *Layer {
	return &Layer{
		sys:           sys,
		ScreenshotDir: "screenshots",
	}
}

// System returns the layer's confetti System.
func (l *Layer) System() *confetti.System {
	return l.sys
}

// SetDebugMode enables per-frame draw stats on stderr.
func (l *Layer) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// Update advances the System by dt seconds.
func (l *Layer) Update(dt float64) {
	l.sys.Update(dt)
}

// Layout reports the canvas size in pixels. It is the System's "canvas size
// known" event; unchanged sizes are ignored.
func (l *Layer) Layout(width, height int) {
	l.sys.Resize(float64(width), float64(height))
}

// Draw renders every visible particle onto dst in a single DrawTriangles32
// call, then writes any queued captures.
func (l *Layer) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	var stats drawStats
	var t0 time.Time
	if l.debug {
		t0 = time.Now()
	}

	stats = l.build(l.sys.Frame(), float64(b.Dx()), float64(b.Dy()))

	if l.debug {
		stats.buildTime = time.Since(t0)
		l.debugLog(stats)
	}

	if len(l.inds) > 0 {
		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		op.AntiAlias = true
		dst.DrawTriangles32(l.verts, l.inds, ensureWhitePixel(), &op)
	}

	l.flushScreenshots(dst)
}

// build fills the vertex and index buffers for frame, skipping pieces that
// cannot overlap a width x height target.
func (l *Layer) build(frame []confetti.Descriptor, width, height float64) drawStats {
	l.verts = l.verts[:0]
	l.inds = l.inds[:0]

	var stats drawStats
	for _, d := range frame {
		if !visible(d, width, height) {
			stats.culled++
			continue
		}
		l.pts = appendOutline(l.pts[:0], d)
		l.verts, l.inds = appendFan(l.verts, l.inds, l.pts, d.Color)
		stats.drawn++
	}
	stats.vertices = len(l.verts)
	return stats
}

func (l *Layer) debugLog(stats drawStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[confetti] %s t=%.2fs | drawn: %d | culled: %d | vertices: %d | build: %v\n",
		l.sys.State(), l.sys.Elapsed(), stats.drawn, stats.culled, stats.vertices, stats.buildTime)
}

// --- White pixel singleton (single-threaded, like the rest of the layer) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
