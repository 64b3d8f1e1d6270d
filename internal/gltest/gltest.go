// Package gltest provides a GL context to tests that need a driver.
package gltest

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/glfwcontext"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/headless"
	options "github.com/richinsley/learngl/options"
)

// Size of the shared context's default framebuffer.
const (
	Width  = 64
	Height = 64
)

var (
	once    sync.Once
	shared  graphics.Context
	initErr error
)

// backend holds the context constructors tried by create.
type backend struct {
	headless      func(width, height int) (graphics.Context, error)
	initGLFW      func() error
	newWindow     func(opts *options.Options) (graphics.Context, error)
	terminateGLFW func()
	initGL        func() error
}

var platform = backend{
	headless: func(width, height int) (graphics.Context, error) {
		h, err := headless.NewHeadless(width, height)
		if err != nil {
			return nil, err
		}
		return h, nil
	},
	initGLFW: glfwcontext.InitGraphics,
	newWindow: func(opts *options.Options) (graphics.Context, error) {
		c, err := glfwcontext.New(opts, false)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
	terminateGLFW: glfwcontext.TerminateGraphics,
	initGL:        func() error { return graphics.InitGL(nil) },
}

// create returns a detached context, preferring headless EGL over a hidden
// GLFW window. GLFW is terminated again when the window cannot be used.
func create(b backend) (graphics.Context, error) {
	h, err := b.headless(Width, Height)
	if err == nil {
		h.DetachCurrent()
		return h, nil
	}
	headlessErr := err

	if err := b.initGLFW(); err != nil {
		return nil, errors.Join(headlessErr, err)
	}
	opts := options.Default()
	opts.Width, opts.Height = Width, Height
	opts.Title = "gltest"
	c, err := b.newWindow(opts)
	if err != nil {
		b.terminateGLFW()
		return nil, errors.Join(headlessErr, err)
	}
	c.MakeCurrent()
	if err := b.initGL(); err != nil {
		c.DetachCurrent()
		c.Shutdown()
		b.terminateGLFW()
		return nil, errors.Join(headlessErr, err)
	}
	c.DetachCurrent()
	return c, nil
}

// Context locks the test goroutine to its OS thread and makes a shared GL
// context current on it for the duration of the test. The test is skipped
// when no context can be created.
func Context(t testing.TB) graphics.Context {
	t.Helper()
	runtime.LockOSThread()
	once.Do(func() {
		shared, initErr = create(platform)
	})
	if initErr != nil {
		runtime.UnlockOSThread()
		t.Skipf("no OpenGL context available: %v", initErr)
	}
	shared.MakeCurrent()
	// Discard errors left behind by earlier tests.
	for i := 0; i < 16 && gl.GetError() != gl.NO_ERROR; i++ {
	}
	t.Cleanup(func() {
		shared.DetachCurrent()
		runtime.UnlockOSThread()
	})
	return shared
}
