package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/learngl/glfwcontext"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/headless"
	options "github.com/richinsley/learngl/options"
	renderer "github.com/richinsley/learngl/renderer"
	"github.com/richinsley/learngl/scenes"
)

func init() {
	runtime.LockOSThread()
}

// newContext opens the window or headless surface and returns a cleanup func.
func newContext(opts *options.Options) (graphics.Context, func(), error) {
	if opts.Headless {
		h, err := headless.NewHeadless(opts.Width, opts.Height)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create headless context: %w", err)
		}
		return h, h.Shutdown, nil
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	visible := opts.Mode == "window"
	c, err := glfwcontext.New(opts, visible)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, nil, fmt.Errorf("failed to create window: %w", err)
	}
	return c, func() {
		c.Shutdown()
		glfwcontext.TerminateGraphics()
	}, nil
}

func run(opts *options.Options) error {
	scene, err := scenes.New(opts.Scene)
	if err != nil {
		return err
	}

	ctx, cleanup, err := newContext(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	setup := scenes.Setup{
		Assets:      scenes.Assets,
		AssetDir:    opts.AssetDir,
		TexturePath: opts.TexturePath,
	}
	if err := scene.Init(setup); err != nil {
		return fmt.Errorf("failed to initialize scene %s: %w", scene.Name(), err)
	}
	defer scene.Destroy()
	log.Printf("Successfully loaded scene: %s", scene.Name())

	switch opts.Mode {
	case "snapshot":
		return r.Snapshot(scene, opts.OutputFile)
	case "record":
		return r.RunOffscreen(scene)
	default:
		log.Println("Starting interactive render loop. W: wireframe, F: fill, Esc: quit.")
		r.Run(scene)
		return nil
	}
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if opts.List {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Println("Closed successfully")
}
