// Package geometry describes vertex data and its attribute layout without
// touching the GL. The buffer package uploads it.
package geometry

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved position + color record.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// VertexSize is the byte stride between consecutive vertices.
const VertexSize = int32(unsafe.Sizeof(Vertex{}))

// Primitive selects how indices are assembled. Values match the GL enums.
type Primitive uint32

const (
	Points    Primitive = 0x0000
	Lines     Primitive = 0x0001
	Triangles Primitive = 0x0004
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// ElementType is the scalar type of an attribute component. Values match the
// GL enums.
type ElementType uint32

const (
	Float32 ElementType = 0x1406
)

// Size returns the byte size of one component.
func (e ElementType) Size() int32 {
	switch e {
	case Float32:
		return 4
	default:
		return 0
	}
}
