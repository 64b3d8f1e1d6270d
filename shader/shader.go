package shader

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	xlate "github.com/richinsley/learngl/translator"
)

// Program is a linked vertex+fragment program. It owns its GL handle
// exclusively; construction failures leave it unusable instead of
// returning an error, and the cause is available from Err.
//
// All methods must be called on the thread that owns the GL context.
type Program struct {
	id     uint32
	usable bool
	err    error

	// names maps source-level identifiers to the ones emitted by the
	// ESSL translator. Empty when no stage was translated.
	names     map[string]string
	locations map[string]int32
}

// Load reads both stages from the OS filesystem and builds a program.
func Load(vertexPath, fragmentPath string) *Program {
	return load(os.ReadFile, vertexPath, fragmentPath)
}

// LoadFS reads both stages from fsys and builds a program.
func LoadFS(fsys fs.FS, vertexPath, fragmentPath string) *Program {
	return load(func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	}, vertexPath, fragmentPath)
}

func load(read func(string) ([]byte, error), vertexPath, fragmentPath string) *Program {
	var errs []error
	vertexSource, err := read(vertexPath)
	if err != nil {
		errs = append(errs, &FileError{Stage: Vertex, Path: vertexPath, Err: err})
	}
	fragmentSource, err := read(fragmentPath)
	if err != nil {
		errs = append(errs, &FileError{Stage: Fragment, Path: fragmentPath, Err: err})
	}
	if len(errs) > 0 {
		return failed(&Program{}, errs)
	}
	return New(string(vertexSource), string(fragmentSource))
}

// New compiles and links the two stages. Both stages are always
// compiled, so a broken vertex stage still reports fragment diagnostics.
func New(vertexSource, fragmentSource string) *Program {
	p := &Program{
		names:     make(map[string]string),
		locations: make(map[string]int32),
	}

	var errs []error
	vertexShader, err := p.compileStage(Vertex, vertexSource)
	if err != nil {
		errs = append(errs, err)
	}
	fragmentShader, err := p.compileStage(Fragment, fragmentSource)
	if err != nil {
		errs = append(errs, err)
	}
	defer func() {
		if vertexShader != 0 {
			gl.DeleteShader(vertexShader)
		}
		if fragmentShader != 0 {
			gl.DeleteShader(fragmentShader)
		}
	}()

	if len(errs) > 0 {
		return failed(p, errs)
	}

	id, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return failed(p, []error{err})
	}
	p.id = id
	p.usable = true
	return p
}

func failed(p *Program, errs []error) *Program {
	p.err = errors.Join(errs...)
	for _, err := range errs {
		log.Printf("Shader error: %v", err)
	}
	return p
}

func (p *Program) compileStage(stage Stage, source string) (uint32, error) {
	if xlate.IsESSL(source) {
		res, err := xlate.Translate(source, stage.translatorType())
		if err != nil {
			return 0, &TranslateError{Stage: stage, Err: err}
		}
		for name, mapped := range res.Names {
			p.names[name] = mapped
		}
		source = res.Code
	}
	return compileShader(source, stage)
}

func compileShader(source string, stage Stage) (uint32, error) {
	shader := gl.CreateShader(stage.glType())
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: trimLog(logText)}
	}
	return shader, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: trimLog(logText)}
	}
	return program, nil
}

func trimLog(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}

// ID returns the GL program name, or 0 when the program is unusable.
func (p *Program) ID() uint32 {
	return p.id
}

// Usable reports whether the program linked and has not been deleted.
func (p *Program) Usable() bool {
	return p.usable
}

// Err returns the construction failure, if any.
func (p *Program) Err() error {
	return p.err
}

// Use makes the program current. It does nothing on an unusable program.
func (p *Program) Use() {
	if !p.usable {
		return
	}
	gl.UseProgram(p.id)
}

// Delete releases the GL program. Calling it again is a no-op.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	var current int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &current)
	if uint32(current) == p.id {
		gl.UseProgram(0)
	}
	gl.DeleteProgram(p.id)
	p.id = 0
	p.usable = false
	p.locations = nil
}
