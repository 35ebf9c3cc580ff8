package mesh

// Resolve converts an OBJ index into a 0-based slot of an array holding
// count elements. Positive indices are 1-based; negative indices count back
// from the end, so -1 is the last element. It returns false for the absent
// sentinel 0 and for indices outside the array.
func Resolve(index int64, count int) (int, bool) {
	n := int64(count)
	switch {
	case index > 0:
		index--
	case index < 0:
		index += n
	default:
		return 0, false
	}
	if index < 0 || index >= n {
		return 0, false
	}
	return int(index), true
}

// FacePositions returns the positions referenced by a face, in order.
// Indices that do not resolve against m.Positions are skipped, so the
// result can be shorter than the face.
func (m *Mesh) FacePositions(f Face) []Position {
	out := make([]Position, 0, len(f.Indices))
	for _, vi := range f.Indices {
		if slot, ok := Resolve(vi.V, len(m.Positions)); ok {
			out = append(out, m.Positions[slot])
		}
	}
	return out
}
