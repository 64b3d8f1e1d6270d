package scenes

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/inputs"
	"github.com/richinsley/learngl/shader"
)

// Position, colour and texture coordinates.
var quadVertices = []float32{
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}

var quadIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
}

var quadLayout = inputs.Layout{Attributes: []int32{3, 3, 2}}

var quadSampler = inputs.Sampler{Wrap: "repeat", Filter: "mipmap", VFlip: true}

// Textures draws a textured quad whose vertex-colour tint fades in and
// out with the clock.
type Textures struct {
	program *shader.Program
	mesh    *inputs.Mesh
	texture *inputs.Texture
}

func (s *Textures) Name() string { return "textures" }

func (s *Textures) Init(setup Setup) error {
	s.program = setup.loadProgram("texture.vs", "texture.fs")
	tex, err := setup.loadTexture(quadSampler)
	if err != nil {
		s.Destroy()
		return err
	}
	s.texture = tex
	mesh, err := newMesh(quadVertices, quadIndices, quadLayout)
	if err != nil {
		s.Destroy()
		return err
	}
	s.mesh = mesh
	s.program.SetInt("uTexture", 0)
	return nil
}

func (s *Textures) Draw(frame Frame) {
	clearScreen(teal)
	s.program.SetFloat("uTheta", float32(frame.Time))
	s.program.Use()
	s.texture.Bind(0)
	s.mesh.Draw()
}

func (s *Textures) Destroy() {
	if s.mesh != nil {
		s.mesh.Destroy()
	}
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.program != nil {
		s.program.Delete()
	}
}

// Transform rotates the textured quad about the view axis. Its shaders are
// written in GLSL ES and translated on load.
type Transform struct {
	program *shader.Program
	mesh    *inputs.Mesh
	texture *inputs.Texture
}

func (s *Transform) Name() string { return "transform" }

func (s *Transform) Init(setup Setup) error {
	s.program = setup.loadProgram("transform.vs", "transform.fs")
	tex, err := setup.loadTexture(quadSampler)
	if err != nil {
		s.Destroy()
		return err
	}
	s.texture = tex
	mesh, err := newMesh(quadVertices, quadIndices, quadLayout)
	if err != nil {
		s.Destroy()
		return err
	}
	s.mesh = mesh
	s.program.SetInt("uTexture", 0)
	return nil
}

// TransformAt is the matrix applied at time t seconds: the quad shifted
// to the bottom-right corner and spun about z.
func TransformAt(t float64) mgl32.Mat4 {
	return mgl32.Translate3D(0.5, -0.5, 0.0).Mul4(mgl32.HomogRotate3DZ(float32(t)))
}

func (s *Transform) Draw(frame Frame) {
	clearScreen(teal)
	s.program.SetMat4("uTransform", TransformAt(frame.Time))
	s.program.Use()
	s.texture.Bind(0)
	s.mesh.Draw()
}

func (s *Transform) Destroy() {
	if s.mesh != nil {
		s.mesh.Destroy()
	}
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.program != nil {
		s.program.Delete()
	}
}
