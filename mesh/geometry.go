package mesh

import "math"

// Box represents an axis-aligned bounding box in model space
type Box struct {
	Min Position
	Max Position
}

// Bounds returns the bounding box of all vertex positions. The second
// result is false when the mesh has no positions.
func (m *Mesh) Bounds() (Box, bool) {
	if m == nil || len(m.Positions) == 0 {
		return Box{}, false
	}
	b := Box{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		b = b.Extend(p)
	}
	return b, true
}

// FiniteBounds is like Bounds but ignores positions with a NaN or
// infinite coordinate. The second result is false when no finite position
// remains.
func (m *Mesh) FiniteBounds() (Box, bool) {
	if m == nil {
		return Box{}, false
	}
	var b Box
	found := false
	for _, p := range m.Positions {
		if !p.IsFinite() {
			continue
		}
		if !found {
			b = Box{Min: p, Max: p}
			found = true
			continue
		}
		b = b.Extend(p)
	}
	return b, found
}

// IsFinite reports whether no coordinate of p is NaN or infinite
func (p Position) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Extend returns the smallest box containing both b and p
func (b Box) Extend(p Position) Box {
	return Box{
		Min: Position{
			X: float32(math.Min(float64(b.Min.X), float64(p.X))),
			Y: float32(math.Min(float64(b.Min.Y), float64(p.Y))),
			Z: float32(math.Min(float64(b.Min.Z), float64(p.Z))),
		},
		Max: Position{
			X: float32(math.Max(float64(b.Max.X), float64(p.X))),
			Y: float32(math.Max(float64(b.Max.Y), float64(p.Y))),
			Z: float32(math.Max(float64(b.Max.Z), float64(p.Z))),
		},
	}
}

// Union returns the union of two boxes
func (b Box) Union(other Box) Box {
	return b.Extend(other.Min).Extend(other.Max)
}

// Size returns the extent of the box along each axis
func (b Box) Size() Position {
	return Position{
		X: b.Max.X - b.Min.X,
		Y: b.Max.Y - b.Min.Y,
		Z: b.Max.Z - b.Min.Z,
	}
}

// Center returns the center point
func (b Box) Center() Position {
	return Position{
		X: b.Min.X + (b.Max.X-b.Min.X)/2,
		Y: b.Min.Y + (b.Max.Y-b.Min.Y)/2,
		Z: b.Min.Z + (b.Max.Z-b.Min.Z)/2,
	}
}

// Contains checks if a point is inside the box (edges inclusive)
func (b Box) Contains(p Position) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
