package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/glquad/logging"
)

// Program is a linked GL program. It must only be used on the thread that
// owns the GL context.
type Program struct {
	id        uint32
	locations map[string]int32
}

// NewFromFiles loads both stages from disk and compiles them.
func NewFromFiles(vertexPath, fragmentPath string) (*Program, error) {
	src, err := LoadSource(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return Compile(src)
}

// Compile compiles each stage and links them. The intermediate shader
// objects are always deleted before returning.
func Compile(src Source) (*Program, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	vertexShader, err := compileShader(src.Vertex, Vertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(src.Fragment, Fragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return nil, &LinkError{Log: trimLog(log)}
	}

	logging.Logger().Info("shader program linked", "program", program)
	return &Program{id: program, locations: make(map[string]int32)}, nil
}

func compileShader(source string, stage Stage) (uint32, error) {
	shader := gl.CreateShader(stage.glType())
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: trimLog(logText)}
	}
	return shader, nil
}

// ID returns the GL program name, or 0 once destroyed.
func (p *Program) ID() uint32 {
	return p.id
}

// Activate makes p the program used by subsequent draw calls.
func (p *Program) Activate() {
	gl.UseProgram(p.id)
}

// Destroy deletes the GL program. Calling it twice is safe.
func (p *Program) Destroy() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
	p.locations = make(map[string]int32)
}
