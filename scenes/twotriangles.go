package scenes

import (
	"github.com/richinsley/learngl/inputs"
	"github.com/richinsley/learngl/shader"
)

var (
	leftTriangle = []float32{
		-0.5, -0.25, 0.0,
		0.0, -0.25, 0.0,
		-0.25, 0.25, 0.0,
	}
	rightTriangle = []float32{
		0.5, -0.25, 0.0,
		0.0, -0.25, 0.0,
		0.25, 0.25, 0.0,
	}
)

// TwoTriangles draws two triangles from separate vertex arrays, each with
// its own program.
type TwoTriangles struct {
	programs [2]*shader.Program
	meshes   [2]*inputs.Mesh
}

func (s *TwoTriangles) Name() string { return "twotriangles" }

func (s *TwoTriangles) Init(setup Setup) error {
	s.programs[0] = shader.New(positionVertexSource, orangeFragmentSource)
	s.programs[1] = shader.New(positionVertexSource, tealFragmentSource)

	layout := inputs.Layout{Attributes: []int32{3}}
	for i, vertices := range [][]float32{leftTriangle, rightTriangle} {
		mesh, err := newMesh(vertices, nil, layout)
		if err != nil {
			s.Destroy()
			return err
		}
		s.meshes[i] = mesh
	}
	return nil
}

func (s *TwoTriangles) Draw(frame Frame) {
	clearScreen(white)
	for i := range s.meshes {
		s.programs[i].Use()
		s.meshes[i].Draw()
	}
}

func (s *TwoTriangles) Destroy() {
	for i := range s.meshes {
		if s.meshes[i] != nil {
			s.meshes[i].Destroy()
		}
		if s.programs[i] != nil {
			s.programs[i].Delete()
		}
	}
}
