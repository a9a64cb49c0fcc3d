// Package options holds the fixed runtime settings of the renderer. They are
// compiled into the binary; nothing is read from disk or the environment.
package options

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/richinsley/glquad/graphics"
)

//go:embed defaults.toml
var defaults []byte

type ContextOptions struct {
	Major             int  `toml:"major"`
	Minor             int  `toml:"minor"`
	CoreProfile       bool `toml:"core_profile"`
	ForwardCompatible bool `toml:"forward_compatible"`
}

type ShaderPaths struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

type Options struct {
	Title      string         `toml:"title"`
	Width      int            `toml:"width"`
	Height     int            `toml:"height"`
	Resizable  bool           `toml:"resizable"`
	Visible    bool           `toml:"visible"`
	Wireframe  bool           `toml:"wireframe"`
	ExitKey    string         `toml:"exit_key"`
	ClearColor mgl32.Vec4     `toml:"clear_color"`
	Context    ContextOptions `toml:"context"`
	Shaders    ShaderPaths    `toml:"shaders"`
}

// Default returns the built-in options.
func Default() (*Options, error) {
	return Decode(defaults)
}

// Decode parses and validates a TOML document. Unknown keys are rejected.
func Decode(data []byte) (*Options, error) {
	o := &Options{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks that the options can open a window and load shaders.
func (o *Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", o.Width, o.Height))
	}
	if o.Context.Major < 3 || (o.Context.Major == 3 && o.Context.Minor < 2 && o.Context.CoreProfile) {
		errs = append(errs, fmt.Errorf("context version %d.%d does not support a core profile", o.Context.Major, o.Context.Minor))
	}
	if o.Shaders.Vertex == "" || o.Shaders.Fragment == "" {
		errs = append(errs, errors.New("both shader paths are required"))
	}
	if _, err := graphics.ParseKey(o.ExitKey); err != nil {
		errs = append(errs, fmt.Errorf("exit key: %w", err))
	}
	for i, c := range o.ClearColor {
		if c < 0 || c > 1 {
			errs = append(errs, fmt.Errorf("clear color component %d = %v outside [0,1]", i, c))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid options: %w", errors.Join(errs...))
	}
	return nil
}

// Key returns the parsed exit key. Options must be valid.
func (o *Options) Key() graphics.Key {
	k, _ := graphics.ParseKey(o.ExitKey)
	return k
}
