// Package preview renders a flat silhouette of a mesh for quick visual
// inspection. Faces are projected orthographically onto one of the
// principal planes and filled as polygons; no lighting, depth or
// triangulation is involved.
package preview

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/tsawler/loadobj/mesh"
)

// Plane selects the two model axes that map to image x and y.
type Plane int

const (
	// PlaneXY looks down the Z axis (front view)
	PlaneXY Plane = iota
	// PlaneXZ looks down the Y axis (top view)
	PlaneXZ
	// PlaneZY looks down the X axis (side view)
	PlaneZY
)

// String returns the plane name
func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "XZ"
	case PlaneZY:
		return "ZY"
	default:
		return "XY"
	}
}

// Options configures rendering
type Options struct {
	Width  int   // image width in pixels
	Height int   // image height in pixels
	Margin int   // blank border in pixels
	Plane  Plane // projection plane
}

// DefaultOptions returns a 256x256 front view with a 4 pixel margin
func DefaultOptions() Options {
	return Options{
		Width:  256,
		Height: 256,
		Margin: 4,
		Plane:  PlaneXY,
	}
}

var (
	// ErrInvalidSize is returned for non-positive dimensions or a margin
	// that leaves no drawing area
	ErrInvalidSize = errors.New("invalid preview size")

	// ErrNoGeometry is returned when the mesh has no finite positions
	ErrNoGeometry = errors.New("mesh has no finite positions")
)

// point is a projected vertex in image space
type point struct {
	X, Y float32
}

// projection maps model positions into image space. It works in float64
// so that spans near the float32 limit do not overflow.
type projection struct {
	plane      Plane
	minU, minV float64
	scale      float64
	offX, offY float64
	height     float64
}

// Render draws every face of m with at least three resolvable positions
// onto a new alpha mask. Overlapping faces merge regardless of their
// winding order. Faces with fewer than three resolvable positions are
// skipped. Positions with a NaN or infinite coordinate are ignored when
// framing, and faces that use one are skipped.
func Render(m *mesh.Mesh, opts Options) (*image.Alpha, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Margin < 0 ||
		2*opts.Margin >= opts.Width || 2*opts.Margin >= opts.Height {
		return nil, ErrInvalidSize
	}
	bounds, ok := m.FiniteBounds()
	if !ok {
		return nil, ErrNoGeometry
	}

	proj := newProjection(bounds, opts)
	r := vector.NewRasterizer(opts.Width, opts.Height)

	pts := make([]point, 0, 8)
	for _, f := range m.Faces {
		pts = appendFace(pts[:0], proj, m.FacePositions(f))
		if len(pts) < 3 {
			continue
		}
		area := signedArea(pts)
		if area == 0 || !finite(area) {
			continue
		}
		// Uniform winding keeps overlapping faces from cancelling out
		if area < 0 {
			reverse(pts)
		}

		r.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			r.LineTo(pt.X, pt.Y)
		}
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst, nil
}

// appendFace projects positions onto dst. A face with any non-finite
// position or projected point yields nothing.
func appendFace(dst []point, proj projection, positions []mesh.Position) []point {
	for _, p := range positions {
		if !p.IsFinite() {
			return dst[:0]
		}
		pt := proj.apply(p)
		if !finite(pt.X) || !finite(pt.Y) {
			return dst[:0]
		}
		dst = append(dst, pt)
	}
	return dst
}

// newProjection fits the bounds into the drawing area, preserving aspect
// ratio and centering the result
func newProjection(b mesh.Box, opts Options) projection {
	minU, minV := axes(b.Min, opts.Plane)
	maxU, maxV := axes(b.Max, opts.Plane)
	if minU > maxU {
		minU, maxU = maxU, minU
	}
	if minV > maxV {
		minV, maxV = maxV, minV
	}

	spanU := maxU - minU
	spanV := maxV - minV
	availW := float64(opts.Width - 2*opts.Margin)
	availH := float64(opts.Height - 2*opts.Margin)

	var scale float64
	switch {
	case spanU > 0 && spanV > 0:
		scale = math.Min(availW/spanU, availH/spanV)
	case spanU > 0:
		scale = availW / spanU
	case spanV > 0:
		scale = availH / spanV
	default:
		scale = 1
	}

	return projection{
		plane:  opts.Plane,
		minU:   minU,
		minV:   minV,
		scale:  scale,
		offX:   float64(opts.Margin) + (availW-spanU*scale)/2,
		offY:   float64(opts.Margin) + (availH-spanV*scale)/2,
		height: float64(opts.Height),
	}
}

// apply projects p; image y grows downwards so model up is flipped
func (pr projection) apply(p mesh.Position) point {
	u, v := axes(p, pr.plane)
	return point{
		X: float32(pr.offX + (u-pr.minU)*pr.scale),
		Y: float32(pr.height - (pr.offY + (v-pr.minV)*pr.scale)),
	}
}

func axes(p mesh.Position, plane Plane) (float64, float64) {
	switch plane {
	case PlaneXZ:
		return float64(p.X), -float64(p.Z)
	case PlaneZY:
		return float64(p.Z), float64(p.Y)
	default:
		return float64(p.X), float64(p.Y)
	}
}

// signedArea returns twice the signed area of the polygon (shoelace)
func signedArea(pts []point) float32 {
	var sum float32
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func reverse(pts []point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
