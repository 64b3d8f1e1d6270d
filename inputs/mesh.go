package inputs

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Layout describes interleaved float vertex attributes. Attributes[i] is the
// component count bound to attribute location i.
type Layout struct {
	Attributes []int32
}

// Components is the number of floats per vertex.
func (l Layout) Components() int32 {
	var n int32
	for _, c := range l.Attributes {
		n += c
	}
	return n
}

// Stride is the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return l.Components() * floatSize
}

// Offset is the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	var off int32
	for _, c := range l.Attributes[:i] {
		off += c
	}
	return int(off) * floatSize
}

// Mesh owns a vertex array, its vertex buffer and an optional index buffer.
type Mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	mode  uint32
}

// NewMesh uploads vertices (and indices, when non-empty) as static data.
func NewMesh(vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	components := layout.Components()
	if components == 0 {
		return nil, fmt.Errorf("vertex layout has no components")
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	if len(vertices)%int(components) != 0 {
		return nil, fmt.Errorf("%d floats is not a whole number of %d-component vertices", len(vertices), components)
	}

	m := &Mesh{
		mode:  gl.TRIANGLES,
		count: int32(len(vertices) / int(components)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
	}

	for i, size := range layout.Attributes {
		gl.VertexAttribPointer(uint32(i), size, gl.FLOAT, false, layout.Stride(), gl.PtrOffset(layout.Offset(i)))
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

// Count is the number of vertices (or indices) drawn.
func (m *Mesh) Count() int32 {
	return m.count
}

func (m *Mesh) Indexed() bool {
	return m.ebo != 0
}

func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Destroy releases the GL objects. Calling it again is a no-op.
func (m *Mesh) Destroy() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
