package glfwcontext

import (
	"errors"
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/glquad/graphics"
	"github.com/richinsley/glquad/logging"
	"github.com/richinsley/glquad/options"
)

var (
	// ErrInit is wrapped when GLFW itself cannot start.
	ErrInit = errors.New("failed to initialize GLFW")
	// ErrWindow is wrapped when the window or its context cannot be created.
	ErrWindow = errors.New("failed to create GLFW window")
)

// Context is a GLFW window implementing graphics.Context. Framebuffer
// resizes are queued by a callback and handed out by PollEvents.
type Context struct {
	window *glfw.Window
	events []graphics.Event
}

var _ graphics.Context = (*Context)(nil)

// New applies the window hints from opts and creates the window. The context
// is not made current.
func New(opts *options.Options) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Context.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Context.Minor)
	if opts.Context.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if opts.Context.ForwardCompatible || runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))
	glfw.WindowHint(glfw.Visible, boolHint(opts.Visible))

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindow, err)
	}

	c := &Context{window: win}
	win.SetFramebufferSizeCallback(c.framebufferSizeCallback)

	logging.Logger().Info("window created", "title", opts.Title, "width", opts.Width, "height", opts.Height,
		"gl", fmt.Sprintf("%d.%d", opts.Context.Major, opts.Context.Minor))
	return c, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (c *Context) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	c.events = append(c.events, graphics.ResizeEvent{Width: width, Height: height})
}

// MakeCurrent makes the context current for the calling thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window. GLFW itself is released by TerminateGraphics.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

// PollEvents processes pending events without blocking and returns the
// events queued since the last call.
func (c *Context) PollEvents() []graphics.Event {
	glfw.PollEvents()
	return c.drainEvents()
}

func (c *Context) drainEvents() []graphics.Event {
	events := c.events
	c.events = nil
	return events
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) KeyPressed(key graphics.Key) bool {
	return c.window.GetKey(glfw.Key(key)) == glfw.Press
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInit, err)
	}
	logging.Logger().Info("GLFW initialized", "version", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	logging.Logger().Info("GLFW terminated")
}
