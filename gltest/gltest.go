//go:build gpu

// Package gltest gives tests a current OpenGL context on a hidden window.
// Tests that use it need a display and are built with -tags gpu.
package gltest

import (
	"runtime"
	"testing"

	"github.com/richinsley/glquad/glcore"
	"github.com/richinsley/glquad/glfwcontext"
	"github.com/richinsley/glquad/options"
)

// Context makes a hidden 64x64 window current for the duration of t, or
// skips t when no display is available.
func Context(t *testing.T) *glfwcontext.Context {
	t.Helper()
	runtime.LockOSThread()

	if err := glfwcontext.InitGraphics(); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("no display: %v", err)
	}

	opts, err := options.Default()
	if err != nil {
		t.Fatal(err)
	}
	opts.Width, opts.Height = 64, 64
	opts.Visible = false

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		glfwcontext.TerminateGraphics()
		runtime.UnlockOSThread()
		t.Skipf("no GL %d.%d context: %v", opts.Context.Major, opts.Context.Minor, err)
	}
	ctx.MakeCurrent()
	if err := glcore.Init(); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		ctx.Shutdown()
		glfwcontext.TerminateGraphics()
		runtime.UnlockOSThread()
	})
	return ctx
}
