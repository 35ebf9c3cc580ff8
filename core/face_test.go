package core

import (
	"testing"

	"github.com/tsawler/loadobj/mesh"
)

// TestDecodeVertexIndex tests every face vertex form and malformed groups
func TestDecodeVertexIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     mesh.VertexIndex
		consumed int
		ok       bool
	}{
		{"position only", "1", mesh.VertexIndex{V: 1}, 1, true},
		{"position and texcoord", "1/2", mesh.VertexIndex{V: 1, VT: 2}, 3, true},
		{"full triplet", "1/2/3", mesh.VertexIndex{V: 1, VT: 2, VN: 3}, 5, true},
		{"position and normal", "1//3", mesh.VertexIndex{V: 1, VN: 3}, 4, true},
		{"relative", "-1/-2/-3", mesh.VertexIndex{V: -1, VT: -2, VN: -3}, 8, true},
		{"multi digit", "120/7/4096", mesh.VertexIndex{V: 120, VT: 7, VN: 4096}, 10, true},
		{"trailing slash", "1/", mesh.VertexIndex{V: 1}, 2, false},
		{"trailing double slash", "1//", mesh.VertexIndex{V: 1}, 3, false},
		{"missing normal", "1/2/", mesh.VertexIndex{V: 1, VT: 2}, 4, false},
		{"no position", "/2/3", mesh.VertexIndex{VT: 2, VN: 3}, 4, false},
		{"garbage", "a", mesh.VertexIndex{}, 0, false},
		{"trailing garbage", "1x", mesh.VertexIndex{V: 1}, 1, true},
		{"extra component", "1/2/3/4", mesh.VertexIndex{V: 1, VT: 2, VN: 3}, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, ok := DecodeVertexIndex(tt.input)
			if got != tt.want {
				t.Errorf("DecodeVertexIndex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if n != tt.consumed {
				t.Errorf("DecodeVertexIndex(%q) consumed = %d, want %d", tt.input, n, tt.consumed)
			}
			if ok != tt.ok {
				t.Errorf("DecodeVertexIndex(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}

func TestSplitGroups(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		texts   []string
		offsets []int
	}{
		{"empty", "", nil, nil},
		{"blank", " \t\r", nil, nil},
		{"single", " 1", []string{"1"}, []int{1}},
		{"mixed separators", " 1/1\t2//2  3\r", []string{"1/1", "2//2", "3"}, []int{1, 5, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := splitGroups(tt.body, nil)
			if len(groups) != len(tt.texts) {
				t.Fatalf("got %d groups, want %d", len(groups), len(tt.texts))
			}
			for i, g := range groups {
				if g.text != tt.texts[i] || g.offset != tt.offsets[i] {
					t.Errorf("group %d = {%q, %d}, want {%q, %d}",
						i, g.text, g.offset, tt.texts[i], tt.offsets[i])
				}
			}
		})
	}
}
