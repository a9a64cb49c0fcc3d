// Package renderer drives the per-frame loop: poll events, handle the exit
// key, clear, draw the scene and present.
package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/glquad/graphics"
	"github.com/richinsley/glquad/input"
	"github.com/richinsley/glquad/logging"
)

// State is the lifecycle stage of a Loop. Transitions only move forward.
type State int

const (
	Uninitialized State = iota
	Running
	Closing
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Device is the framebuffer state the loop touches each frame.
type Device interface {
	Viewport(x, y, width, height int)
	ClearColor(c mgl32.Vec4)
	Clear()
	PolygonMode(wireframe bool)
}

// Opener creates the window and its context.
type Opener func() (graphics.Context, error)

// Setup runs once the context is current and builds what the loop draws.
type Setup func(ctx graphics.Context) (Device, *Scene, error)

type LoopOptions struct {
	ClearColor mgl32.Vec4
	Wireframe  bool
	Input      input.Handler
}

// Loop owns the context, device and scene for the lifetime of the process.
type Loop struct {
	opts   LoopOptions
	ctx    graphics.Context
	device Device
	scene  *Scene
	window graphics.WindowState
	state  State
	frames uint64
	start  float64
}

func NewLoop(opts LoopOptions) *Loop {
	return &Loop{opts: opts}
}

func (l *Loop) State() State                 { return l.state }
func (l *Loop) Window() graphics.WindowState { return l.window }
func (l *Loop) Frames() uint64               { return l.frames }

func (l *Loop) advance(to State) {
	if to <= l.state {
		return
	}
	logging.Logger().Debug("render loop state", "from", l.state, "to", to)
	l.state = to
}

// Start opens the context and runs setup. On success the loop is Running.
// On any failure everything acquired so far is released, the loop is
// Terminated and the error is returned.
func (l *Loop) Start(open Opener, setup Setup) error {
	if l.state != Uninitialized {
		return fmt.Errorf("render loop already started (%s)", l.state)
	}

	ctx, err := open()
	if err != nil {
		logging.Logger().Error("could not open window", "err", err)
		l.advance(Terminated)
		return err
	}
	ctx.MakeCurrent()

	device, scene, err := setup(ctx)
	if err != nil {
		logging.Logger().Error("could not set up scene", "err", err)
		scene.Destroy()
		ctx.Shutdown()
		l.advance(Terminated)
		return err
	}

	l.ctx, l.device, l.scene = ctx, device, scene
	w, h := ctx.GetFramebufferSize()
	l.resize(w, h)
	l.device.PolygonMode(l.opts.Wireframe)
	l.start = ctx.Time()
	l.advance(Running)
	logging.Logger().Info("render loop started", "width", w, "height", h)
	return nil
}

func (l *Loop) resize(width, height int) {
	l.window.Resize(width, height)
	l.device.Viewport(0, 0, width, height)
}

// Frame runs one iteration. It does nothing unless the loop is Running.
// When the window is asked to close the loop moves to Closing without
// drawing.
func (l *Loop) Frame() {
	if l.state != Running {
		return
	}

	for _, ev := range l.ctx.PollEvents() {
		if rs, ok := ev.(graphics.ResizeEvent); ok {
			l.resize(rs.Width, rs.Height)
		}
	}

	if l.opts.Input.ShouldExit(l.ctx) {
		l.ctx.SetShouldClose(true)
	}
	if l.ctx.ShouldClose() {
		l.advance(Closing)
		return
	}

	l.device.ClearColor(l.opts.ClearColor)
	l.device.Clear()
	l.scene.Draw()
	l.ctx.SwapBuffers()
	l.frames++
}

// Run renders frames until the window closes, then shuts down.
func (l *Loop) Run() {
	for l.state == Running {
		l.Frame()
	}
	l.Shutdown()
}

// Shutdown releases the scene and the context. It is safe to call more than
// once and from any state.
func (l *Loop) Shutdown() {
	if l.state == Terminated {
		return
	}
	if l.ctx != nil {
		elapsed := l.ctx.Time() - l.start
		l.scene.Destroy()
		l.ctx.Shutdown()
		logging.Logger().Info("render loop stopped", "frames", l.frames, "seconds", fmt.Sprintf("%.2f", elapsed))
	}
	l.scene, l.ctx = nil, nil
	l.advance(Terminated)
}
