package mesh

import (
	"math"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

// ============================================================================
// Mesh Tests
// ============================================================================

func TestNewMeshIsEmptyAndNonNil(t *testing.T) {
	m := New()
	if m.Positions == nil || m.TexCoords == nil || m.Normals == nil || m.Faces == nil {
		t.Fatalf("New() returned nil slices: %+v", m)
	}
	if !m.IsEmpty() {
		t.Error("expected new mesh to be empty")
	}
	if m.PositionCount() != 0 || m.TexCoordCount() != 0 || m.NormalCount() != 0 || m.FaceCount() != 0 {
		t.Error("expected all counts to be 0")
	}
}

func TestVertexIndexSentinels(t *testing.T) {
	tests := []struct {
		name      string
		vi        VertexIndex
		hasTex    bool
		hasNormal bool
	}{
		{"bare", VertexIndex{V: 1}, false, false},
		{"with texcoord", VertexIndex{V: 1, VT: 2}, true, false},
		{"with normal", VertexIndex{V: 1, VN: 3}, false, true},
		{"full", VertexIndex{V: 1, VT: 2, VN: 3}, true, true},
		{"relative", VertexIndex{V: -1, VT: -1, VN: -1}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vi.HasTexCoord(); got != tt.hasTex {
				t.Errorf("HasTexCoord() = %v, want %v", got, tt.hasTex)
			}
			if got := tt.vi.HasNormal(); got != tt.hasNormal {
				t.Errorf("HasNormal() = %v, want %v", got, tt.hasNormal)
			}
		})
	}
}

func TestDestroy(t *testing.T) {
	faces := []Face{
		{Indices: []VertexIndex{{V: 1}, {V: 2}, {V: 3}}},
		{Indices: []VertexIndex{{V: 3}, {V: 2}, {V: 1}}},
	}
	m := &Mesh{
		Positions: []Position{{1, 2, 3}},
		TexCoords: []TexCoord{{0.5, 0.5}},
		Normals:   []Normal{{0, 0, 1}},
		Faces:     faces,
	}

	Destroy(m)

	if m.Positions != nil || m.TexCoords != nil || m.Normals != nil || m.Faces != nil {
		t.Errorf("expected all slices released, got %+v", m)
	}
	// The face buffers are released before the faces slice is dropped.
	for i, f := range faces {
		if f.Indices != nil {
			t.Errorf("face %d still owns its indices", i)
		}
	}
}

func TestDestroyNilAndTwice(t *testing.T) {
	var m *Mesh
	m.Destroy()
	Destroy(nil)

	m = New()
	m.Destroy()
	m.Destroy()
	if !m.IsEmpty() {
		t.Error("expected destroyed mesh to be empty")
	}
}

// ============================================================================
// Index Tests
// ============================================================================

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		index  int64
		count  int
		want   int
		wantOK bool
	}{
		{"first", 1, 3, 0, true},
		{"last", 3, 3, 2, true},
		{"past end", 4, 3, 0, false},
		{"sentinel", 0, 3, 0, false},
		{"relative last", -1, 3, 2, true},
		{"relative first", -3, 3, 0, true},
		{"relative before start", -4, 3, 0, false},
		{"empty array", 1, 0, 0, false},
		{"huge", math.MaxInt64, 3, 0, false},
		{"huge negative", math.MinInt64 + 1, 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.index, tt.count)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%d, %d) = (%d, %v), want (%d, %v)",
					tt.index, tt.count, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFacePositions(t *testing.T) {
	m := &Mesh{
		Positions: []Position{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	}
	f := Face{Indices: []VertexIndex{{V: 1}, {V: -1}, {V: 9}, {V: 2}}}

	got := m.FacePositions(f)
	want := []Position{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}}
	if len(got) != len(want) {
		t.Fatalf("FacePositions() returned %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// ============================================================================
// Geometry Tests
// ============================================================================

func TestBounds(t *testing.T) {
	m := &Mesh{
		Positions: []Position{{1, 2, 3}, {-1, 5, 0}, {4, -2, 1}},
	}
	b, ok := m.Bounds()
	if !ok {
		t.Fatal("expected bounds for non-empty mesh")
	}
	if b.Min != (Position{-1, -2, 0}) {
		t.Errorf("Min = %+v, want {-1 -2 0}", b.Min)
	}
	if b.Max != (Position{4, 5, 3}) {
		t.Errorf("Max = %+v, want {4 5 3}", b.Max)
	}
	if got := b.Size(); got != (Position{5, 7, 3}) {
		t.Errorf("Size() = %+v, want {5 7 3}", got)
	}
	if got := b.Center(); got != (Position{1.5, 1.5, 1.5}) {
		t.Errorf("Center() = %+v, want {1.5 1.5 1.5}", got)
	}
	if !b.Contains(Position{0, 0, 0}) {
		t.Error("expected box to contain origin")
	}
	if b.Contains(Position{0, 0, 4}) {
		t.Error("expected box not to contain {0 0 4}")
	}
}

func TestBoundsEmpty(t *testing.T) {
	if _, ok := New().Bounds(); ok {
		t.Error("expected no bounds for empty mesh")
	}
	var m *Mesh
	if _, ok := m.Bounds(); ok {
		t.Error("expected no bounds for nil mesh")
	}
}

func TestFiniteBounds(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	m := &Mesh{
		Positions: []Position{{nan, 0, 0}, {1, 2, 3}, {0, inf, 0}, {-1, 0, 1}},
	}

	if _, ok := m.Bounds(); !ok {
		t.Fatal("expected bounds")
	}
	b, ok := m.FiniteBounds()
	if !ok {
		t.Fatal("expected finite bounds")
	}
	if b.Min != (Position{-1, 0, 1}) || b.Max != (Position{1, 2, 3}) {
		t.Errorf("FiniteBounds() = %+v", b)
	}

	only := &Mesh{Positions: []Position{{nan, nan, nan}, {inf, 0, 0}}}
	if _, ok := only.FiniteBounds(); ok {
		t.Error("expected no finite bounds")
	}
	var nilMesh *Mesh
	if _, ok := nilMesh.FiniteBounds(); ok {
		t.Error("expected no finite bounds for nil mesh")
	}
}

func TestBoxUnion(t *testing.T) {
	a := Box{Min: Position{0, 0, 0}, Max: Position{1, 1, 1}}
	b := Box{Min: Position{-1, 0.5, 0}, Max: Position{0.5, 2, 0.5}}
	u := a.Union(b)
	if u.Min != (Position{-1, 0, 0}) || u.Max != (Position{1, 2, 1}) {
		t.Errorf("Union() = %+v", u)
	}
}

// ============================================================================
// Stats Tests
// ============================================================================

func TestStats(t *testing.T) {
	m := &Mesh{
		Positions: make([]Position, 5),
		TexCoords: make([]TexCoord, 2),
		Normals:   make([]Normal, 1),
		Faces: []Face{
			{Indices: []VertexIndex{{V: 1}, {V: 2}}},
			{Indices: []VertexIndex{{V: 1, VT: 1}, {V: 2, VT: 2}, {V: 3, VN: 1}}},
			{Indices: []VertexIndex{{V: 1}, {V: 2}, {V: 3}, {V: -1}}},
			{Indices: []VertexIndex{{V: 1}, {V: 2}, {V: 3}, {V: 4}, {V: 5}}},
			{},
		},
	}

	s := m.Stats()
	want := Stats{
		Positions:       5,
		TexCoords:       2,
		Normals:         1,
		Faces:           5,
		Degenerate:      2,
		Triangles:       1,
		Quads:           1,
		Polygons:        1,
		Indices:         14,
		TexCoordIndices: 2,
		NormalIndices:   1,
		RelativeIndices: 1,
	}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestStatsFormat(t *testing.T) {
	s := Stats{Positions: 12345, Faces: 3, Triangles: 3, Indices: 9}

	en := s.Format(language.English)
	if !strings.Contains(en, "positions: 12,345") {
		t.Errorf("English summary missing grouped count:\n%s", en)
	}
	if !strings.Contains(en, "faces:     3 (3 triangles") {
		t.Errorf("English summary missing face line:\n%s", en)
	}

	de := s.Format(language.German)
	if !strings.Contains(de, "positions: 12.345") {
		t.Errorf("German summary missing grouped count:\n%s", de)
	}

	if s.String() != en {
		t.Error("String() should match English formatting")
	}
}
