package overlay

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/confetti"
)

// Capture queues a labeled PNG of the next drawn frame. At the end of Draw
// the file is written to ScreenshotDir, named after the effect's state and
// fall time so a series of captures sorts in playback order.
func (l *Layer) Capture(label string) {
	l.screenshotQueue = append(l.screenshotQueue, label)
}

// flushScreenshots writes the rendered frame once per queued label.
func (l *Layer) flushScreenshots(screen *ebiten.Image) {
	if len(l.screenshotQueue) == 0 {
		return
	}
	defer func() { l.screenshotQueue = l.screenshotQueue[:0] }()

	if err := os.MkdirAll(l.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[confetti] screenshot: mkdir %s: %v\n", l.ScreenshotDir, err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	state, elapsed := l.sys.State(), l.sys.Elapsed()
	for _, label := range l.screenshotQueue {
		l.captures++
		path := filepath.Join(l.ScreenshotDir, captureName(state, elapsed, l.captures, label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[confetti] screenshot: %v\n", err)
			continue
		}
		if l.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[confetti] screenshot: %s\n", path)
		}
	}
}

// captureName returns the file name for the seq-th capture of this layer,
// e.g. "falling_t001.250s_003_burst.png". Idle captures carry no time.
func captureName(state confetti.State, elapsed float64, seq int, label string) string {
	if state != confetti.StateFalling {
		return fmt.Sprintf("%s_%03d_%s.png", state, seq, sanitizeLabel(label))
	}
	return fmt.Sprintf("%s_t%07.3fs_%03d_%s.png", state, elapsed, seq, sanitizeLabel(label))
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
