package shader

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Stage identifies one shader unit prior to linking.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// translatorType is the stage name the ESSL translator expects.
func (s Stage) translatorType() string {
	if s == Vertex {
		return "vertex"
	}
	return "fragment"
}

func (s Stage) glType() uint32 {
	if s == Vertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

// FileError reports a shader source file that could not be read.
type FileError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to read %s shader %q: %v", e.Stage, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// CompileError carries the driver's info log for a rejected stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// TranslateError reports an ESSL stage the translator rejected.
type TranslateError struct {
	Stage Stage
	Err   error
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("failed to translate %s shader: %v", e.Stage, e.Err)
}

func (e *TranslateError) Unwrap() error { return e.Err }

// LinkError carries the driver's info log for a rejected link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}
