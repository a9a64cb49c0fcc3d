// Package buffer owns GPU-resident geometry: a vertex array object with its
// vertex and element buffers.
package buffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/glquad/geometry"
	"github.com/richinsley/glquad/logging"
)

// GeometryBuffer is a VAO recording the vertex layout and element buffer
// binding, plus the two buffers it reads from.
type GeometryBuffer struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Upload validates data and copies it into freshly allocated static
// buffers sized exactly to the vertex and index byte lengths.
func Upload(data geometry.Data) (*GeometryBuffer, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("uploading geometry: %w", err)
	}

	b := &GeometryBuffer{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	// The VAO captures everything below, including the element buffer.
	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, data.VertexBytes(), gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, data.IndexBytes(), gl.Ptr(data.Indices), gl.STATIC_DRAW)

	for _, a := range data.Layout {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, uint32(a.Type), a.Normalized, a.Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Index)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logging.Logger().Info("geometry uploaded",
		"vertices", len(data.Vertices),
		"indices", len(data.Indices),
		"bytes", data.VertexBytes()+data.IndexBytes())
	return b, nil
}

// Bind makes b the source of subsequent draw calls.
func (b *GeometryBuffer) Bind() {
	gl.BindVertexArray(b.vao)
}

// Draw issues an indexed draw of count 32-bit indices starting at offset 0.
// b must be bound.
func (b *GeometryBuffer) Draw(mode geometry.Primitive, count int32) {
	gl.DrawElements(uint32(mode), count, gl.UNSIGNED_INT, nil)
}

// IndexCount is the number of indices uploaded.
func (b *GeometryBuffer) IndexCount() int32 {
	return b.indexCount
}

// Destroy deletes the VAO and both buffers. Calling it twice is safe.
func (b *GeometryBuffer) Destroy() {
	if b.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
	b.vao, b.vbo, b.ebo = 0, 0, 0
}
