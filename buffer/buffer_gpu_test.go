//go:build gpu

package buffer

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/glquad/geometry"
	"github.com/richinsley/glquad/gltest"
	"github.com/richinsley/glquad/shader"
)

func TestUploadQuad(t *testing.T) {
	gltest.Context(t)

	q := geometry.Quad()
	b, err := Upload(q)
	require.NoError(t, err)
	defer b.Destroy()

	assert.Equal(t, int32(6), b.IndexCount())

	b.Bind()
	var size int32
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	assert.Equal(t, int32(q.VertexBytes()), size)

	gl.GetBufferParameteriv(gl.ELEMENT_ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	assert.Equal(t, int32(q.IndexBytes()), size)

	indices := make([]uint32, 6)
	gl.GetBufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, q.IndexBytes(), gl.Ptr(indices))
	assert.Equal(t, []uint32{0, 1, 3, 1, 2, 3}, indices)

	var stride, enabled int32
	gl.GetVertexAttribiv(1, gl.VERTEX_ATTRIB_ARRAY_STRIDE, &stride)
	gl.GetVertexAttribiv(1, gl.VERTEX_ATTRIB_ARRAY_ENABLED, &enabled)
	assert.Equal(t, int32(24), stride)
	assert.Equal(t, int32(gl.TRUE), enabled)

	var offset unsafe.Pointer
	gl.GetVertexAttribPointerv(1, gl.VERTEX_ATTRIB_ARRAY_POINTER, &offset)
	assert.Equal(t, uintptr(12), uintptr(offset))

	p, err := shader.NewFromFiles("../shaders/vShader.vs", "../shaders/fShader.fs")
	require.NoError(t, err)
	defer p.Destroy()
	p.Activate()
	b.Draw(geometry.Triangles, b.IndexCount())
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestUploadRejectsInvalid(t *testing.T) {
	q := geometry.Quad()
	q.Indices[0] = 9
	_, err := Upload(q)
	assert.ErrorIs(t, err, geometry.ErrInvalid)
}

func TestDestroyTwice(t *testing.T) {
	gltest.Context(t)

	b, err := Upload(geometry.Quad())
	require.NoError(t, err)
	b.Destroy()
	assert.NotPanics(t, b.Destroy)
}
