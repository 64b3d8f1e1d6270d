package shader

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// uniform resolves and caches the location of name. ok is false for an
// unusable program and for names the linked program does not expose.
func (p *Program) uniform(name string) (loc int32, ok bool) {
	if !p.usable {
		return -1, false
	}
	if loc, cached := p.locations[name]; cached {
		return loc, loc >= 0
	}
	mapped := name
	if m, found := p.names[name]; found {
		mapped = m
	}
	loc = gl.GetUniformLocation(p.id, gl.Str(mapped+"\x00"))
	p.locations[name] = loc
	return loc, loc >= 0
}

// Location returns the uniform location for name, or -1.
func (p *Program) Location(name string) int32 {
	loc, _ := p.uniform(name)
	return loc
}

// SetBool writes value as an integer 1 or 0.
func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.SetInt(name, v)
}

func (p *Program) SetInt(name string, value int32) {
	if loc, ok := p.uniform(name); ok {
		gl.ProgramUniform1i(p.id, loc, value)
	}
}

func (p *Program) SetFloat(name string, value float32) {
	if loc, ok := p.uniform(name); ok {
		gl.ProgramUniform1f(p.id, loc, value)
	}
}

func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	if loc, ok := p.uniform(name); ok {
		gl.ProgramUniform3f(p.id, loc, value[0], value[1], value[2])
	}
}

func (p *Program) SetVec4(name string, value mgl32.Vec4) {
	if loc, ok := p.uniform(name); ok {
		gl.ProgramUniform4f(p.id, loc, value[0], value[1], value[2], value[3])
	}
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	if loc, ok := p.uniform(name); ok {
		gl.ProgramUniformMatrix4fv(p.id, loc, 1, false, &value[0])
	}
}
