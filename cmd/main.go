package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/glquad/buffer"
	"github.com/richinsley/glquad/geometry"
	"github.com/richinsley/glquad/glcore"
	"github.com/richinsley/glquad/glfwcontext"
	"github.com/richinsley/glquad/graphics"
	"github.com/richinsley/glquad/input"
	"github.com/richinsley/glquad/logging"
	"github.com/richinsley/glquad/options"
	"github.com/richinsley/glquad/renderer"
	"github.com/richinsley/glquad/shader"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	os.Exit(run())
}

// run returns the process exit code: 0 after a clean shutdown, 1 when
// anything before the first frame fails.
func run() int {
	log := logging.Logger()

	opts, err := options.Default()
	if err != nil {
		log.Error("invalid options", "err", err)
		return 1
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Error("unable to initialize GLFW", "err", err)
		return 1
	}
	defer glfwcontext.TerminateGraphics()

	loop := renderer.NewLoop(renderer.LoopOptions{
		ClearColor: opts.ClearColor,
		Wireframe:  opts.Wireframe,
		Input:      input.Handler{ExitKey: opts.Key()},
	})

	open := func() (graphics.Context, error) {
		return glfwcontext.New(opts)
	}
	if err := loop.Start(open, setupScene(opts)); err != nil {
		return 1
	}
	loop.Run()
	return 0
}

// setupScene loads GL, compiles the shaders and uploads the quad. A shader
// that fails to compile or link stops startup.
func setupScene(opts *options.Options) renderer.Setup {
	return func(graphics.Context) (renderer.Device, *renderer.Scene, error) {
		if err := glcore.Init(); err != nil {
			return nil, nil, err
		}

		program, err := shader.NewFromFiles(opts.Shaders.Vertex, opts.Shaders.Fragment)
		if err != nil {
			return nil, nil, fmt.Errorf("building shader program: %w", err)
		}
		scene := &renderer.Scene{Title: opts.Title, Program: program}

		quad := geometry.Quad()
		mesh, err := buffer.Upload(quad)
		if err != nil {
			return nil, scene, err
		}
		scene.Mesh = mesh
		logging.Logger().Info("scene ready", "geometry", quad.String())

		return glcore.Device{}, scene, nil
	}
}
