// Package scenes holds the tutorial programs. Each scene owns its GPU
// resources and receives everything else through Setup and Frame.
package scenes

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"path/filepath"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/inputs"
	"github.com/richinsley/learngl/shader"
)

//go:embed assets/shaders
var embedded embed.FS

// GPU resource constructors, replaceable in tests.
var (
	newMesh    = inputs.NewMesh
	newTexture = inputs.NewTexture
)

// Assets is the embedded shader tree, rooted at the shader directory.
var Assets fs.FS

func init() {
	var err error
	Assets, err = fs.Sub(embedded, "assets/shaders")
	if err != nil {
		panic(err)
	}
}

// Setup is passed to Scene.Init.
type Setup struct {
	// Assets supplies shader files when AssetDir is empty.
	Assets fs.FS
	// AssetDir, when set, loads shader files from this directory on disk.
	AssetDir string
	// TexturePath is the image used by textured scenes.
	TexturePath string
}

// Frame is the per-frame state handed to Scene.Draw.
type Frame struct {
	Time   float64
	Width  int
	Height int
}

type Scene interface {
	Name() string
	// Init creates GPU resources. A context must be current.
	Init(setup Setup) error
	Draw(frame Frame)
	// Destroy releases everything Init created. It is safe to call twice.
	Destroy()
}

var registry = map[string]func() Scene{
	"triangle":     func() Scene { return &Triangle{} },
	"triforce":     func() Scene { return &Triforce{} },
	"twotriangles": func() Scene { return &TwoTriangles{} },
	"vertexcolor":  func() Scene { return &VertexColor{} },
	"shaderclass":  func() Scene { return &ShaderClass{} },
	"textures":     func() Scene { return &Textures{} },
	"uniformcolor": func() Scene { return &UniformColor{} },
	"transform":    func() Scene { return &Transform{} },
}

// New returns the scene registered under name.
func New(name string) (Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return ctor(), nil
}

// Names lists the registered scenes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadProgram builds a program from two shader files. Failures are logged
// by the shader package and the scene carries on with an unusable program.
func (s Setup) loadProgram(vertexName, fragmentName string) *shader.Program {
	if s.AssetDir != "" {
		return shader.Load(filepath.Join(s.AssetDir, vertexName), filepath.Join(s.AssetDir, fragmentName))
	}
	assets := s.Assets
	if assets == nil {
		assets = Assets
	}
	return shader.LoadFS(assets, vertexName, fragmentName)
}

// loadTexture loads the configured image, falling back to a checkerboard.
func (s Setup) loadTexture(sampler inputs.Sampler) (*inputs.Texture, error) {
	if s.TexturePath != "" {
		tex, err := inputs.LoadTexture(s.TexturePath, sampler)
		if err == nil {
			return tex, nil
		}
		log.Printf("Failed to load texture: %v", err)
	}
	img := inputs.Checkerboard(256, 8, color.RGBA{R: 200, G: 140, B: 60, A: 255}, color.RGBA{R: 90, G: 60, B: 30, A: 255})
	return newTexture(img, sampler)
}

func clearScreen(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
