//go:build gpu

package glfwcontext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/glquad/gltest"
	"github.com/richinsley/glquad/graphics"
)

func TestHiddenWindow(t *testing.T) {
	ctx := gltest.Context(t)

	w, h := ctx.GetFramebufferSize()
	assert.Positive(t, w)
	assert.Positive(t, h)
	assert.False(t, ctx.KeyPressed(graphics.KeyEscape))

	assert.False(t, ctx.ShouldClose())
	ctx.SetShouldClose(true)
	assert.True(t, ctx.ShouldClose())

	ctx.PollEvents()
	ctx.SwapBuffers()
	assert.GreaterOrEqual(t, ctx.Time(), 0.0)
}
