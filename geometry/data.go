package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid geometry")

// Data is a vertex list, the indices that assemble it into primitives, and
// the attribute layout of each vertex.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
	Layout   Layout
}

// Quad returns the unit quad centered at the origin, one primary color per
// corner, drawn as two triangles sharing the 1-3 diagonal.
func Quad() Data {
	return Data{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{0.5, 0.5, 0}, Color: mgl32.Vec3{1, 0, 0}},   // top right
			{Position: mgl32.Vec3{0.5, -0.5, 0}, Color: mgl32.Vec3{0, 1, 0}},  // bottom right
			{Position: mgl32.Vec3{-0.5, -0.5, 0}, Color: mgl32.Vec3{0, 0, 1}}, // bottom left
			{Position: mgl32.Vec3{-0.5, 0.5, 0}, Color: mgl32.Vec3{1, 1, 0}},  // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		Layout: VertexLayout(),
	}
}

// VertexBytes is the byte length of the vertex list.
func (d Data) VertexBytes() int {
	return len(d.Vertices) * int(VertexSize)
}

// IndexBytes is the byte length of the index list.
func (d Data) IndexBytes() int {
	return len(d.Indices) * 4
}

// Triangles groups the indices into triangles.
func (d Data) Triangles() [][3]uint32 {
	tris := make([][3]uint32, 0, len(d.Indices)/3)
	for i := 0; i+2 < len(d.Indices); i += 3 {
		tris = append(tris, [3]uint32{d.Indices[i], d.Indices[i+1], d.Indices[i+2]})
	}
	return tris
}

// Validate checks that the data can be drawn as indexed triangles.
func (d Data) Validate() error {
	if len(d.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalid)
	}
	if len(d.Indices) == 0 || len(d.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a positive multiple of 3", ErrInvalid, len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= len(d.Vertices) {
			return fmt.Errorf("%w: index %d at position %d out of range for %d vertices", ErrInvalid, idx, i, len(d.Vertices))
		}
	}
	if len(d.Layout) == 0 {
		return fmt.Errorf("%w: empty layout", ErrInvalid)
	}
	seen := make(map[uint32]bool, len(d.Layout))
	for _, a := range d.Layout {
		if a.Stride != VertexSize {
			return fmt.Errorf("%w: attribute %d stride %d, want %d", ErrInvalid, a.Index, a.Stride, VertexSize)
		}
		if a.Size < 1 || a.Size > 4 || a.Type.Size() == 0 {
			return fmt.Errorf("%w: attribute %d has unsupported shape", ErrInvalid, a.Index)
		}
		if int32(a.Offset)+a.Size*a.Type.Size() > a.Stride {
			return fmt.Errorf("%w: attribute %d overflows the vertex stride", ErrInvalid, a.Index)
		}
		if seen[a.Index] {
			return fmt.Errorf("%w: attribute %d declared twice", ErrInvalid, a.Index)
		}
		seen[a.Index] = true
	}
	return nil
}

func (d Data) String() string {
	return fmt.Sprintf("%d vertices, %d triangles", len(d.Vertices), len(d.Indices)/3)
}
