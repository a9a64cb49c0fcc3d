//go:build gpu

package shader

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/glquad/gltest"
)

const testVertex = `#version 330 core
layout (location = 0) in vec3 aPos;
uniform mat4 uTransform;
void main() { gl_Position = uTransform * vec4(aPos, 1.0); }
`

const testFragment = `#version 330 core
uniform vec4 uTint;
uniform float uScale;
out vec4 FragColor;
void main() { FragColor = uTint * uScale; }
`

func TestCompileShippedShaders(t *testing.T) {
	gltest.Context(t)

	p, err := NewFromFiles("../shaders/vShader.vs", "../shaders/fShader.fs")
	require.NoError(t, err)
	defer p.Destroy()

	assert.NotZero(t, p.ID())
	assert.Equal(t, gl.TRUE, int(boolParam(p.ID(), gl.LINK_STATUS)))

	p.Activate()
	var current int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &current)
	assert.Equal(t, int32(p.ID()), current)
}

func TestCompileSyntaxError(t *testing.T) {
	gltest.Context(t)

	p, err := Compile(Source{Vertex: testVertex, Fragment: "#version 330 core\nvoid main() { oops }\n"})
	assert.Nil(t, p)

	var ce *CompileError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, Fragment, ce.Stage)
	assert.NotEmpty(t, ce.Log)
}

func TestCompileLinkError(t *testing.T) {
	gltest.Context(t)

	// The fragment stage consumes an input the vertex stage never writes.
	frag := "#version 330 core\nin vec3 missing;\nout vec4 c;\nvoid main() { c = vec4(missing, 1.0); }\n"
	p, err := Compile(Source{Vertex: testVertex, Fragment: frag})
	assert.Nil(t, p)

	var le *LinkError
	require.True(t, errors.As(err, &le), "got %v", err)
	assert.NotEmpty(t, le.Log)
}

func TestUniforms(t *testing.T) {
	gltest.Context(t)

	p, err := Compile(Source{Vertex: testVertex, Fragment: testFragment})
	require.NoError(t, err)
	defer p.Destroy()
	p.Activate()

	p.SetVec4("uTint", mgl32.Vec4{1, 0.5, 0.25, 1})
	p.SetFloat("uScale", 2)
	p.SetMat4("uTransform", mgl32.Ident4())
	p.SetBool("uMissing", true)

	assert.Equal(t, int32(-1), p.UniformLocation("uMissing"))
	assert.NotEqual(t, int32(-1), p.UniformLocation("uTint"))

	var tint [4]float32
	gl.GetUniformfv(p.ID(), p.UniformLocation("uTint"), &tint[0])
	assert.Equal(t, [4]float32{1, 0.5, 0.25, 1}, tint)

	var scale float32
	gl.GetUniformfv(p.ID(), p.UniformLocation("uScale"), &scale)
	assert.Equal(t, float32(2), scale)
}

func TestDestroyTwice(t *testing.T) {
	gltest.Context(t)

	p, err := Compile(Source{Vertex: testVertex, Fragment: testFragment})
	require.NoError(t, err)
	p.Destroy()
	assert.Zero(t, p.ID())
	assert.NotPanics(t, p.Destroy)
}

func boolParam(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}
