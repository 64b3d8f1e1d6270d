package inputs

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sampler holds the texture parameters applied at upload.
type Sampler struct {
	Wrap   string // repeat, mirror or clamp
	Filter string // mipmap, linear or nearest
	VFlip  bool   // flip rows so the first image row lands at v=1
}

// wrapMode is the GL wrap constant for both S and T. Unknown values repeat.
func (s Sampler) wrapMode() int32 {
	switch s.Wrap {
	case "mirror":
		return gl.MIRRORED_REPEAT
	case "clamp":
		return gl.CLAMP_TO_EDGE
	default:
		return gl.REPEAT
	}
}

// filterModes returns the minification and magnification filters.
// Unknown values filter linearly without mipmaps.
func (s Sampler) filterModes() (minFilter, magFilter int32) {
	switch s.Filter {
	case "mipmap":
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	case "nearest":
		return gl.NEAREST, gl.NEAREST
	default:
		return gl.LINEAR, gl.LINEAR
	}
}

func (s Sampler) mipmapped() bool {
	return s.Filter == "mipmap"
}

// apply sets the sampler parameters on the texture bound to TEXTURE_2D.
func (s Sampler) apply() {
	wrap := s.wrapMode()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	minFilter, magFilter := s.filterModes()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)
}
