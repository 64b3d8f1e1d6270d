package scenes

import (
	"github.com/richinsley/learngl/inputs"
	"github.com/richinsley/learngl/shader"
)

var triforceVertices = []float32{
	-0.25, -0.25, 0.0,
	0.0, -0.25, 0.0,
	0.25, -0.25, 0.0,
	-0.125, 0.0, 0.0,
	0.125, 0.0, 0.0,
	0.0, 0.25, 0.0,
}

var triforceIndices = []uint32{
	0, 1, 3,
	1, 2, 4,
	3, 4, 5,
}

// Triforce draws three triangles sharing six vertices through an index buffer.
type Triforce struct {
	program *shader.Program
	mesh    *inputs.Mesh
}

func (s *Triforce) Name() string { return "triforce" }

func (s *Triforce) Init(setup Setup) error {
	s.program = shader.New(positionVertexSource, orangeFragmentSource)
	mesh, err := newMesh(triforceVertices, triforceIndices, inputs.Layout{Attributes: []int32{3}})
	if err != nil {
		s.Destroy()
		return err
	}
	s.mesh = mesh
	return nil
}

func (s *Triforce) Draw(frame Frame) {
	clearScreen(white)
	s.program.Use()
	s.mesh.Draw()
}

func (s *Triforce) Destroy() {
	if s.mesh != nil {
		s.mesh.Destroy()
	}
	if s.program != nil {
		s.program.Delete()
	}
}
