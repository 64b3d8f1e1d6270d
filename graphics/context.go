package graphics

import (
	"sync"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/events"
)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	// DetachCurrent releases the context from the calling thread.
	DetachCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// Events drains the input events queued since the last call.
	Events() []events.Event
}

var (
	glInitOnce sync.Once
	glInitErr  error
)

// InitGL loads the GL function pointers once per process. A context must
// be current. getProcAddr may be nil to use the platform default loader.
func InitGL(getProcAddr func(name string) unsafe.Pointer) error {
	glInitOnce.Do(func() {
		if getProcAddr != nil {
			glInitErr = gl.InitWithProcAddrFunc(getProcAddr)
			return
		}
		glInitErr = gl.Init()
	})
	return glInitErr
}
