package shader

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"
	"testing/fstest"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/internal/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passthroughVertex = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos, 1.0);
}
`

const orangeFragment = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const uniformFragment = `#version 330 core
out vec4 FragColor;
uniform bool uFlag;
uniform int uCount;
uniform float uScale;
uniform vec4 uTint;
void main()
{
    float f = uFlag ? 1.0 : 0.0;
    FragColor = uTint * uScale * f + vec4(float(uCount));
}
`

const matrixVertex = `#version 330 core
layout (location = 0) in vec3 aPos;
uniform mat4 uTransform;
uniform vec3 uOffset;
void main()
{
    gl_Position = uTransform * vec4(aPos + uOffset, 1.0);
}
`

const brokenSource = `#version 330 core
void main()
{
    this is not glsl;
}
`

// captureLog redirects the standard logger for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", Vertex.String())
	assert.Equal(t, "fragment", Fragment.String())
	assert.Equal(t, "stage(7)", Stage(7).String())
}

func TestErrorMessagesNameTheStage(t *testing.T) {
	assert.Contains(t, (&CompileError{Stage: Vertex, Log: "0:3: syntax error"}).Error(), "vertex")
	assert.Contains(t, (&CompileError{Stage: Fragment, Log: "x"}).Error(), "fragment")
	assert.Contains(t, (&LinkError{Log: "x"}).Error(), "link")

	inner := errors.New("boom")
	fe := &FileError{Stage: Fragment, Path: "a.fs", Err: inner}
	assert.Contains(t, fe.Error(), "a.fs")
	assert.ErrorIs(t, fe, inner)
	te := &TranslateError{Stage: Vertex, Err: inner}
	assert.ErrorIs(t, te, inner)
}

func TestLoadMissingFiles(t *testing.T) {
	logs := captureLog(t)

	p := Load("does/not/exist.vs", "does/not/exist.fs")
	require.NotNil(t, p)
	assert.False(t, p.Usable())
	assert.Zero(t, p.ID())
	assert.ErrorIs(t, p.Err(), os.ErrNotExist)

	var fe *FileError
	require.ErrorAs(t, p.Err(), &fe)
	assert.Equal(t, Vertex, fe.Stage)
	assert.Contains(t, p.Err().Error(), "fragment")
	assert.Contains(t, logs.String(), "does/not/exist.vs")

	// None of these may reach GL on an unusable program.
	p.Use()
	p.SetBool("x", true)
	p.SetInt("x", 1)
	p.SetFloat("x", 1)
	p.SetVec4("x", mgl32.Vec4{})
	p.SetMat4("x", mgl32.Ident4())
	assert.Equal(t, int32(-1), p.Location("x"))
	p.Delete()
	p.Delete()
}

func TestLoadFSMissingFragment(t *testing.T) {
	captureLog(t)
	fsys := fstest.MapFS{
		"a.vs": &fstest.MapFile{Data: []byte(passthroughVertex)},
	}
	p := LoadFS(fsys, "a.vs", "a.fs")
	assert.False(t, p.Usable())

	var fe *FileError
	require.ErrorAs(t, p.Err(), &fe)
	assert.Equal(t, Fragment, fe.Stage)
	assert.Equal(t, "a.fs", fe.Path)
}

func TestNewUsableAndUse(t *testing.T) {
	gltest.Context(t)

	p := New(passthroughVertex, orangeFragment)
	t.Cleanup(p.Delete)
	require.True(t, p.Usable(), "unexpected error: %v", p.Err())
	assert.NoError(t, p.Err())
	assert.NotZero(t, p.ID())

	p.Use()
	var current int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &current)
	assert.Equal(t, p.ID(), uint32(current))
	gl.UseProgram(0)
}

func TestLoadFSBuildsProgram(t *testing.T) {
	gltest.Context(t)

	fsys := fstest.MapFS{
		"shaders/a.vs": &fstest.MapFile{Data: []byte(passthroughVertex)},
		"shaders/a.fs": &fstest.MapFile{Data: []byte(orangeFragment)},
	}
	p := LoadFS(fsys, "shaders/a.vs", "shaders/a.fs")
	t.Cleanup(p.Delete)
	assert.True(t, p.Usable(), "unexpected error: %v", p.Err())
}

func TestVertexCompileError(t *testing.T) {
	gltest.Context(t)
	logs := captureLog(t)

	p := New(brokenSource, orangeFragment)
	t.Cleanup(p.Delete)
	assert.False(t, p.Usable())
	assert.Zero(t, p.ID())

	var ce *CompileError
	require.ErrorAs(t, p.Err(), &ce)
	assert.Equal(t, Vertex, ce.Stage)
	assert.NotEmpty(t, ce.Log)
	assert.Contains(t, logs.String(), "vertex")
	assert.NotContains(t, p.Err().Error(), "fragment shader")

	// Using a failed program is a no-op rather than a GL error.
	p.Use()
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestStagesCompileIndependently(t *testing.T) {
	gltest.Context(t)
	captureLog(t)

	p := New(brokenSource, brokenSource)
	t.Cleanup(p.Delete)
	assert.False(t, p.Usable())

	msg := p.Err().Error()
	assert.Contains(t, msg, "vertex shader")
	assert.Contains(t, msg, "fragment shader")
}

func TestLinkError(t *testing.T) {
	gltest.Context(t)
	captureLog(t)

	// Both stages compile alone; the varying types only clash at link time.
	vertex := `#version 330 core
layout (location = 0) in vec3 aPos;
out vec3 vCol;
void main()
{
    vCol = aPos;
    gl_Position = vec4(aPos, 1.0);
}
`
	fragment := `#version 330 core
in vec4 vCol;
out vec4 FragColor;
void main()
{
    FragColor = vCol;
}
`
	p := New(vertex, fragment)
	t.Cleanup(p.Delete)
	assert.False(t, p.Usable())
	assert.Zero(t, p.ID())

	var le *LinkError
	require.ErrorAs(t, p.Err(), &le)
	assert.NotEmpty(t, le.Log)
	assert.Contains(t, p.Err().Error(), "link")

	var ce *CompileError
	assert.False(t, errors.As(p.Err(), &ce), "stages must compile on their own")
}

func getInt(t *testing.T, p *Program, name string) int32 {
	t.Helper()
	loc := p.Location(name)
	require.GreaterOrEqual(t, loc, int32(0), "uniform %s is not active", name)
	var v int32
	gl.GetUniformiv(p.ID(), loc, &v)
	return v
}

func TestSetBoolReadsBackAsInteger(t *testing.T) {
	gltest.Context(t)

	p := New(passthroughVertex, uniformFragment)
	t.Cleanup(p.Delete)
	require.True(t, p.Usable(), "unexpected error: %v", p.Err())

	p.SetBool("uFlag", true)
	assert.Equal(t, int32(1), getInt(t, p, "uFlag"))
	p.SetBool("uFlag", false)
	assert.Equal(t, int32(0), getInt(t, p, "uFlag"))
}

func TestSetScalarAndVector(t *testing.T) {
	gltest.Context(t)

	p := New(passthroughVertex, uniformFragment)
	t.Cleanup(p.Delete)
	require.True(t, p.Usable(), "unexpected error: %v", p.Err())

	p.SetInt("uCount", 7)
	assert.Equal(t, int32(7), getInt(t, p, "uCount"))

	p.SetFloat("uScale", 0.25)
	var scale float32
	gl.GetUniformfv(p.ID(), p.Location("uScale"), &scale)
	assert.Equal(t, float32(0.25), scale)

	p.SetVec4("uTint", mgl32.Vec4{1, 0.5, 0.25, 1})
	var tint [4]float32
	gl.GetUniformfv(p.ID(), p.Location("uTint"), &tint[0])
	assert.Equal(t, [4]float32{1, 0.5, 0.25, 1}, tint)
}

func TestSetMatrix(t *testing.T) {
	gltest.Context(t)

	p := New(matrixVertex, orangeFragment)
	t.Cleanup(p.Delete)
	require.True(t, p.Usable(), "unexpected error: %v", p.Err())

	m := mgl32.Translate3D(1, 2, 3)
	p.SetMat4("uTransform", m)
	var got mgl32.Mat4
	gl.GetUniformfv(p.ID(), p.Location("uTransform"), &got[0])
	assert.Equal(t, m, got)

	p.SetVec3("uOffset", mgl32.Vec3{4, 5, 6})
	var off mgl32.Vec3
	gl.GetUniformfv(p.ID(), p.Location("uOffset"), &off[0])
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, off)
}

func TestUnknownUniformIsNoop(t *testing.T) {
	gltest.Context(t)

	p := New(passthroughVertex, uniformFragment)
	t.Cleanup(p.Delete)
	require.True(t, p.Usable(), "unexpected error: %v", p.Err())

	p.SetInt("uCount", 3)
	p.SetBool("uFlag", true)

	p.SetInt("uNoSuchUniform", 42)
	p.SetBool("uNoSuchUniform", false)
	p.SetFloat("uNoSuchUniform", 1.5)
	p.SetMat4("uNoSuchUniform", mgl32.Ident4())

	assert.Equal(t, int32(-1), p.Location("uNoSuchUniform"))
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
	assert.Equal(t, int32(3), getInt(t, p, "uCount"))
	assert.Equal(t, int32(1), getInt(t, p, "uFlag"))
}

func TestDeleteReleasesProgram(t *testing.T) {
	gltest.Context(t)

	p := New(passthroughVertex, orangeFragment)
	require.True(t, p.Usable(), "unexpected error: %v", p.Err())
	id := p.ID()
	p.Use()

	p.Delete()
	assert.False(t, gl.IsProgram(id))
	assert.False(t, p.Usable())
	assert.Zero(t, p.ID())

	var current int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &current)
	assert.Zero(t, current)

	p.Delete()
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}
