package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/richinsley/glquad/graphics"
)

func TestResizeQueue(t *testing.T) {
	c := &Context{}
	assert.Empty(t, c.drainEvents())

	c.framebufferSizeCallback(nil, 1024, 768)
	c.framebufferSizeCallback(nil, 300, 200)
	assert.Equal(t, []graphics.Event{
		graphics.ResizeEvent{Width: 1024, Height: 768},
		graphics.ResizeEvent{Width: 300, Height: 200},
	}, c.drainEvents())
	assert.Empty(t, c.drainEvents(), "queue is emptied by each drain")
}

func TestBoolHint(t *testing.T) {
	assert.Equal(t, glfw.True, boolHint(true))
	assert.Equal(t, glfw.False, boolHint(false))
}

func TestKeyCodesMatchGLFW(t *testing.T) {
	assert.Equal(t, int(glfw.KeyEscape), int(graphics.KeyEscape))
	assert.Equal(t, int(glfw.KeySpace), int(graphics.KeySpace))
	assert.Equal(t, int(glfw.KeyQ), int(graphics.KeyQ))
	assert.Equal(t, int(glfw.KeyEnter), int(graphics.KeyEnter))
	assert.Equal(t, int(glfw.KeyUnknown), int(graphics.KeyUnknown))
}

func TestShutdownWithoutWindow(t *testing.T) {
	c := &Context{}
	assert.NotPanics(t, c.Shutdown)
}
