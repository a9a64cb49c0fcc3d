package geometry

import "unsafe"

// Attribute describes one field of a vertex record.
type Attribute struct {
	Index      uint32
	Size       int32 // component count
	Type       ElementType
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// Layout is the ordered set of attributes read from one vertex buffer.
type Layout []Attribute

// VertexLayout returns the layout of Vertex: position at location 0 and color
// at location 1.
func VertexLayout() Layout {
	return Layout{
		{Index: 0, Size: 3, Type: Float32, Stride: VertexSize, Offset: unsafe.Offsetof(Vertex{}.Position)},
		{Index: 1, Size: 3, Type: Float32, Stride: VertexSize, Offset: unsafe.Offsetof(Vertex{}.Color)},
	}
}
