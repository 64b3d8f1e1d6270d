package gltest

import (
	"errors"
	"testing"

	"github.com/richinsley/learngl/events"
	"github.com/richinsley/learngl/graphics"
	options "github.com/richinsley/learngl/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	current  bool
	shutdown bool
}

func (w *fakeWindow) MakeCurrent()                   { w.current = true }
func (w *fakeWindow) DetachCurrent()                 { w.current = false }
func (w *fakeWindow) Shutdown()                      { w.shutdown = true }
func (w *fakeWindow) ShouldClose() bool              { return false }
func (w *fakeWindow) SetShouldClose(bool)            {}
func (w *fakeWindow) EndFrame()                      {}
func (w *fakeWindow) GetFramebufferSize() (int, int) { return Width, Height }
func (w *fakeWindow) Time() float64                  { return 0 }
func (w *fakeWindow) Events() []events.Event         { return nil }

var (
	errNoEGL     = errors.New("no egl display")
	errNoDisplay = errors.New("no x display")
)

// windowOnly fails headless creation and records GLFW termination.
func windowOnly(terminated *int) backend {
	return backend{
		headless: func(int, int) (graphics.Context, error) { return nil, errNoEGL },
		initGLFW: func() error { return nil },
		newWindow: func(*options.Options) (graphics.Context, error) {
			return &fakeWindow{}, nil
		},
		terminateGLFW: func() { *terminated++ },
		initGL:        func() error { return nil },
	}
}

func TestCreatePrefersHeadless(t *testing.T) {
	var terminated int
	b := windowOnly(&terminated)
	h := &fakeWindow{current: true}
	b.headless = func(int, int) (graphics.Context, error) { return h, nil }
	b.initGLFW = func() error { t.Fatal("glfw must not be initialised"); return nil }

	c, err := create(b)
	require.NoError(t, err)
	assert.Same(t, h, c)
	assert.False(t, h.current)
}

func TestCreateFallsBackToWindow(t *testing.T) {
	var terminated int
	c, err := create(windowOnly(&terminated))
	require.NoError(t, err)
	assert.False(t, c.(*fakeWindow).current)
	assert.Zero(t, terminated)
}

func TestCreateTerminatesGLFWWhenWindowFails(t *testing.T) {
	var terminated int
	b := windowOnly(&terminated)
	b.newWindow = func(*options.Options) (graphics.Context, error) { return nil, errNoDisplay }

	_, err := create(b)
	assert.ErrorIs(t, err, errNoEGL)
	assert.ErrorIs(t, err, errNoDisplay)
	assert.Equal(t, 1, terminated)
}

func TestCreateReleasesWindowWhenGLInitFails(t *testing.T) {
	var terminated int
	b := windowOnly(&terminated)
	w := &fakeWindow{}
	b.newWindow = func(*options.Options) (graphics.Context, error) { return w, nil }
	errLoad := errors.New("no gl entry points")
	b.initGL = func() error { return errLoad }

	_, err := create(b)
	assert.ErrorIs(t, err, errLoad)
	assert.True(t, w.shutdown)
	assert.False(t, w.current)
	assert.Equal(t, 1, terminated)
}

func TestCreateSkipsTerminateWhenGLFWInitFails(t *testing.T) {
	var terminated int
	b := windowOnly(&terminated)
	b.initGLFW = func() error { return errNoDisplay }

	_, err := create(b)
	assert.ErrorIs(t, err, errNoEGL)
	assert.Zero(t, terminated)
}
