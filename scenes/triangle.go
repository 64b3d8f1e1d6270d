package scenes

import (
	"github.com/richinsley/learngl/inputs"
	"github.com/richinsley/learngl/shader"
)

// TriangleVertices is a single triangle centred on the origin.
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// Triangle draws one orange triangle over a white background.
type Triangle struct {
	program *shader.Program
	mesh    *inputs.Mesh
}

func (s *Triangle) Name() string { return "triangle" }

func (s *Triangle) Init(setup Setup) error {
	s.program = shader.New(positionVertexSource, orangeFragmentSource)
	mesh, err := newMesh(TriangleVertices, nil, inputs.Layout{Attributes: []int32{3}})
	if err != nil {
		s.Destroy()
		return err
	}
	s.mesh = mesh
	return nil
}

func (s *Triangle) Draw(frame Frame) {
	clearScreen(white)
	s.program.Use()
	s.mesh.Draw()
}

func (s *Triangle) Destroy() {
	if s.mesh != nil {
		s.mesh.Destroy()
	}
	if s.program != nil {
		s.program.Delete()
	}
}
