package core

import "github.com/tsawler/loadobj/mesh"

// DecodeVertexIndex decodes one face vertex group in any of the forms
// v, v/vt, v//vn and v/vt/vn from the start of s. Missing texture
// coordinate and normal references are left as 0. It returns the index,
// the number of bytes consumed, and whether every number the group calls
// for was present.
func DecodeVertexIndex(s string) (mesh.VertexIndex, int, bool) {
	var vi mesh.VertexIndex

	v, n := ParseInt(s)
	vi.V = v
	ok := n > 0
	i := n

	if i < len(s) && s[i] == '/' {
		i++

		// v//vn leaves the texture coordinate absent
		if i >= len(s) || s[i] != '/' {
			vt, n := ParseInt(s[i:])
			vi.VT = vt
			ok = ok && n > 0
			i += n
		}

		if i < len(s) && s[i] == '/' {
			i++
			vn, n := ParseInt(s[i:])
			vi.VN = vn
			ok = ok && n > 0
			i += n
		}
	}

	return vi, i, ok
}

// indexGroup is one whitespace-delimited group of a face line
type indexGroup struct {
	text   string
	offset int // byte offset within the face body
}

// splitGroups splits a face body into its whitespace-delimited groups
func splitGroups(body string, dst []indexGroup) []indexGroup {
	i := 0
	for {
		for i < len(body) && isSpace(body[i]) {
			i++
		}
		if i >= len(body) {
			return dst
		}
		start := i
		for i < len(body) && !isSpace(body[i]) {
			i++
		}
		dst = append(dst, indexGroup{text: body[start:i], offset: start})
	}
}
