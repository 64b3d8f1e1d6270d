package renderer

import (
	"fmt"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/events"
	"github.com/richinsley/learngl/graphics"
	options "github.com/richinsley/learngl/options"
	"github.com/richinsley/learngl/scenes"
)

// Renderer drives a scene on a graphics context.
type Renderer struct {
	context           graphics.Context
	options           *options.Options
	offscreenRenderer *OffscreenRenderer
	width             int
	height            int
	wireframe         bool
}

func NewRenderer(ctx graphics.Context, opts *options.Options) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		options: opts,
		width:   opts.Width,
		height:  opts.Height,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()
	if err := graphics.InitGL(nil); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return r, nil
}

func (r *Renderer) Shutdown() {
	if r.offscreenRenderer != nil {
		r.offscreenRenderer.Destroy()
		r.offscreenRenderer = nil
	}
}

// offscreen returns the offscreen target, creating it on first use.
func (r *Renderer) offscreen() (*OffscreenRenderer, error) {
	if r.offscreenRenderer == nil {
		or, err := NewOffscreenRenderer(r.width, r.height)
		if err != nil {
			return nil, fmt.Errorf("failed to create offscreen renderer: %w", err)
		}
		r.offscreenRenderer = or
	}
	return r.offscreenRenderer, nil
}

// handleEvents applies queued input once per frame.
func (r *Renderer) handleEvents() {
	for _, ev := range r.context.Events() {
		switch events.ActionFor(ev) {
		case events.Close:
			r.context.SetShouldClose(true)
		case events.Wireframe:
			r.setWireframe(true)
		case events.Fill:
			r.setWireframe(false)
		case events.Viewport:
			gl.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
		}
	}
}

func (r *Renderer) setWireframe(on bool) {
	r.wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Wireframe reports whether polygons are drawn as lines.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// RenderFrame draws one frame of scene into the currently bound framebuffer.
func (r *Renderer) RenderFrame(scene scenes.Scene, time float64, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	scene.Draw(scenes.Frame{Time: time, Width: width, Height: height})
}

// Run is the interactive loop. It returns when the context should close.
func (r *Renderer) Run(scene scenes.Scene) {
	startTime := r.context.Time()
	for !r.context.ShouldClose() {
		r.handleEvents()
		fbWidth, fbHeight := r.context.GetFramebufferSize()
		r.RenderFrame(scene, r.context.Time()-startTime, fbWidth, fbHeight)
		r.context.EndFrame()
	}
}
