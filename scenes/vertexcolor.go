package scenes

import (
	"github.com/richinsley/learngl/inputs"
	"github.com/richinsley/learngl/shader"
)

// Interleaved position and colour.
var colorVertices = []float32{
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
}

var colorIndices = []uint32{0, 1, 2}

var colorLayout = inputs.Layout{Attributes: []int32{3, 3}}

// VertexColor draws a triangle whose colour is interpolated from a second
// vertex attribute.
type VertexColor struct {
	program *shader.Program
	mesh    *inputs.Mesh
}

func (s *VertexColor) Name() string { return "vertexcolor" }

func (s *VertexColor) Init(setup Setup) error {
	s.program = shader.New(colorVertexSource, colorFragmentSource)
	mesh, err := newMesh(colorVertices, colorIndices, colorLayout)
	if err != nil {
		s.Destroy()
		return err
	}
	s.mesh = mesh
	return nil
}

func (s *VertexColor) Draw(frame Frame) {
	clearScreen(teal)
	s.program.Use()
	s.mesh.Draw()
}

func (s *VertexColor) Destroy() {
	if s.mesh != nil {
		s.mesh.Destroy()
	}
	if s.program != nil {
		s.program.Delete()
	}
}

// ShaderClass is VertexColor with its shaders read from files.
type ShaderClass struct {
	VertexColor
}

func (s *ShaderClass) Name() string { return "shaderclass" }

func (s *ShaderClass) Init(setup Setup) error {
	s.program = setup.loadProgram("vertexcolor.vs", "vertexcolor.fs")
	mesh, err := newMesh(colorVertices, colorIndices, colorLayout)
	if err != nil {
		s.Destroy()
		return err
	}
	s.mesh = mesh
	return nil
}
