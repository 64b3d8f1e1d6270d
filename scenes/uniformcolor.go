package scenes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/inputs"
	"github.com/richinsley/learngl/shader"
)

// UniformColor pulses the triangle's green channel with the clock.
type UniformColor struct {
	program *shader.Program
	mesh    *inputs.Mesh
}

func (s *UniformColor) Name() string { return "uniformcolor" }

func (s *UniformColor) Init(setup Setup) error {
	s.program = shader.New(positionVertexSource, uniformFragmentSource)
	mesh, err := newMesh(TriangleVertices, nil, inputs.Layout{Attributes: []int32{3}})
	if err != nil {
		s.Destroy()
		return err
	}
	s.mesh = mesh
	return nil
}

// PulseColor is the colour drawn at time t seconds.
func PulseColor(t float64) mgl32.Vec4 {
	green := float32(math.Sin(t)/2.0 + 0.5)
	return mgl32.Vec4{0.0, green, 0.0, 1.0}
}

func (s *UniformColor) Draw(frame Frame) {
	clearScreen(teal)
	s.program.SetVec4("uColor", PulseColor(frame.Time))
	s.program.Use()
	s.mesh.Draw()
}

func (s *UniformColor) Destroy() {
	if s.mesh != nil {
		s.mesh.Destroy()
	}
	if s.program != nil {
		s.program.Delete()
	}
}
