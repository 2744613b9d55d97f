package overlay

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/confetti"
)

// cornerSegments is the number of edges used to approximate each rounded corner.
const cornerSegments = 4

// appendOutline appends the outline of d's rounded rectangle, rotated about
// its center and translated to d.Position. Points run clockwise on screen.
func appendOutline(pts []confetti.Vec2, d confetti.Descriptor) []confetti.Vec2 {
	hw, hh := d.Size.X/2, d.Size.Y/2
	r := math.Min(d.Radius, math.Min(hw, hh))
	if r < 0 {
		r = 0
	}

	rad := d.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	place := func(x, y float64) confetti.Vec2 {
		return confetti.Vec2{
			X: cos*x - sin*y + d.Position.X,
			Y: sin*x + cos*y + d.Position.Y,
		}
	}

	if r == 0 {
		return append(pts,
			place(-hw, -hh), place(hw, -hh), place(hw, hh), place(-hw, hh))
	}

	// Corner arc centers, starting top-right, each sweeping 90 degrees.
	centers := [4][2]float64{
		{hw - r, -hh + r},
		{hw - r, hh - r},
		{-hw + r, hh - r},
		{-hw + r, -hh + r},
	}
	for c, center := range centers {
		start := -math.Pi/2 + float64(c)*math.Pi/2
		for i := 0; i <= cornerSegments; i++ {
			a := start + float64(i)*(math.Pi/2)/cornerSegments
			pts = append(pts, place(center[0]+r*math.Cos(a), center[1]+r*math.Sin(a)))
		}
	}
	return pts
}

// appendFan appends a fan-triangulated convex polygon filled with c. Colors
// are premultiplied; source coordinates hit the center of the white pixel.
func appendFan(verts []ebiten.Vertex, inds []uint32, pts []confetti.Vec2, c confetti.Color) ([]ebiten.Vertex, []uint32) {
	n := len(pts)
	if n < 3 {
		return verts, inds
	}

	a := float32(c.A)
	cr, cg, cb := float32(c.R)*a, float32(c.G)*a, float32(c.B)*a
	base := uint32(len(verts))

	for _, p := range pts {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}

	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds = append(inds, base, base+uint32(i+1), base+uint32(i+2))
	}
	return verts, inds
}

// visible reports whether d can overlap a width x height target. The test
// uses the half-diagonal so rotation never hides a visible piece.
func visible(d confetti.Descriptor, width, height float64) bool {
	reach := math.Hypot(d.Size.X, d.Size.Y) / 2
	return d.Position.X+reach >= 0 && d.Position.X-reach <= width &&
		d.Position.Y+reach >= 0 && d.Position.Y-reach <= height
}
