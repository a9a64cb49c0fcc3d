package graphics

// Context defines the interface for a window owning an OpenGL context.
// All methods must be called from the thread that created it.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	// PollEvents processes pending window events and returns the ones
	// queued since the previous call.
	PollEvents() []Event
	SwapBuffers()
	GetFramebufferSize() (int, int)
	KeyPressed(Key) bool
	Time() float64
}

// Event is a window event delivered through Context.PollEvents.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) isEvent() {}

// WindowState is the framebuffer size last observed by the render loop.
type WindowState struct {
	Width, Height int
}

// Resize records a new size.
func (w *WindowState) Resize(width, height int) {
	w.Width = width
	w.Height = height
}
