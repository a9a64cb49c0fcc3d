// Package shader compiles GLSL vertex and fragment sources into a linked
// program and writes its uniforms.
package shader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage is a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

func (s Stage) glType() uint32 {
	if s == Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// ErrEmptySource is returned for a stage whose source has no content.
var ErrEmptySource = errors.New("empty shader source")

// Source is the GLSL text of both stages, kept verbatim.
type Source struct {
	Vertex   string
	Fragment string
}

// Stage returns the text for s.
func (src Source) Stage(s Stage) string {
	if s == Fragment {
		return src.Fragment
	}
	return src.Vertex
}

// Validate reports which stage, if any, is blank.
func (src Source) Validate() error {
	for _, s := range []Stage{Vertex, Fragment} {
		if strings.TrimSpace(src.Stage(s)) == "" {
			return fmt.Errorf("%s: %w", s, ErrEmptySource)
		}
	}
	return nil
}

// LoadSource reads both stages from disk.
func LoadSource(vertexPath, fragmentPath string) (Source, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return Source{}, fmt.Errorf("reading vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return Source{}, fmt.Errorf("reading fragment shader: %w", err)
	}
	src := Source{Vertex: string(vs), Fragment: string(fs)}
	if err := src.Validate(); err != nil {
		return Source{}, err
	}
	return src, nil
}
