package renderer

import (
	"github.com/richinsley/glquad/geometry"
	"github.com/richinsley/glquad/logging"
)

// Program is a linked shader program.
type Program interface {
	Activate()
	Destroy()
}

// Mesh is uploaded indexed geometry.
type Mesh interface {
	Bind()
	Draw(mode geometry.Primitive, count int32)
	IndexCount() int32
	Destroy()
}

// Scene is the one program and one mesh drawn every frame. It owns both.
type Scene struct {
	Title   string
	Program Program
	Mesh    Mesh
}

// Draw activates the program, binds the mesh and draws all its indices as
// triangles.
func (s *Scene) Draw() {
	s.Program.Activate()
	s.Mesh.Bind()
	s.Mesh.Draw(geometry.Triangles, s.Mesh.IndexCount())
}

// Destroy releases the GPU resources of the scene. Members already released
// or never created are skipped.
func (s *Scene) Destroy() {
	if s == nil {
		return
	}
	if s.Mesh != nil {
		s.Mesh.Destroy()
		s.Mesh = nil
	}
	if s.Program != nil {
		s.Program.Destroy()
		s.Program = nil
	}
	logging.Logger().Info("scene destroyed", "title", s.Title)
}
