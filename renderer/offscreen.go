package renderer

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/scenes"
)

// OffscreenRenderer is an RGBA8 framebuffer with a depth attachment that
// frames can be rendered into and read back from.
type OffscreenRenderer struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid offscreen size %dx%d", width, height)
	}
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	gl.GenRenderbuffers(1, &or.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, or.depthRenderbuffer)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%x)", status)
	}
	return or, nil
}

func (or *OffscreenRenderer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
}

func (or *OffscreenRenderer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ReadPixels returns the framebuffer contents bottom row first, 4 bytes per pixel.
func (or *OffscreenRenderer) ReadPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return pixels
}

// Image returns the framebuffer contents top row first.
func (or *OffscreenRenderer) Image() *image.RGBA {
	pixels := or.ReadPixels()
	img := image.NewRGBA(image.Rect(0, 0, or.width, or.height))
	rowSize := or.width * 4
	for y := 0; y < or.height; y++ {
		src := pixels[(or.height-1-y)*rowSize : (or.height-y)*rowSize]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img
}

func (or *OffscreenRenderer) Destroy() {
	if or.fbo != 0 {
		gl.DeleteFramebuffers(1, &or.fbo)
		or.fbo = 0
	}
	if or.textureID != 0 {
		gl.DeleteTextures(1, &or.textureID)
		or.textureID = 0
	}
	if or.depthRenderbuffer != 0 {
		gl.DeleteRenderbuffers(1, &or.depthRenderbuffer)
		or.depthRenderbuffer = 0
	}
}

// RenderImage draws a single frame of scene at time t offscreen and returns it.
func (r *Renderer) RenderImage(scene scenes.Scene, t float64) (*image.RGBA, error) {
	or, err := r.offscreen()
	if err != nil {
		return nil, err
	}
	or.Bind()
	r.RenderFrame(scene, t, or.width, or.height)
	or.Unbind()
	return or.Image(), nil
}

// Snapshot renders the first frame of scene and writes it as a PNG.
func (r *Renderer) Snapshot(scene scenes.Scene, path string) error {
	img, err := r.RenderImage(scene, 0)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("Wrote snapshot of %s to %s", scene.Name(), path)
	return nil
}
