package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformLocation resolves name once and caches the answer, including -1
// for uniforms the linker removed.
func (p *Program) UniformLocation(name string) int32 {
	loc, ok := p.locations[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.locations[name] = loc
	}
	return loc
}

// The setters write to the currently active program, so Activate must have
// been called on p. Writes to a missing uniform are dropped.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}
