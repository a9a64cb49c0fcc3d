// Package glcore loads the OpenGL function table and issues the few
// framebuffer-level calls the render loop needs.
package glcore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/glquad/logging"
)

// ErrContextInit is wrapped when the GL function pointers cannot be loaded.
var ErrContextInit = errors.New("failed to initialize OpenGL")

var (
	glInitOnce sync.Once
	glInitErr  error
)

// Init loads the GL function pointers for the current context. It must be
// called after a context is made current; later calls return the first
// result.
func Init() error {
	glInitOnce.Do(func() {
		if err := gl.Init(); err != nil {
			glInitErr = fmt.Errorf("%w: %v", ErrContextInit, err)
			return
		}
		logging.Logger().Info("OpenGL initialized",
			"version", gl.GoStr(gl.GetString(gl.VERSION)),
			"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	})
	return glInitErr
}

// Device issues framebuffer state calls against the current context.
type Device struct{}

func (Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Device) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Clear clears the color buffer only.
func (Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// PolygonMode switches between line and filled rasterization.
func (Device) PolygonMode(wireframe bool) {
	mode := uint32(gl.FILL)
	if wireframe {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
}
