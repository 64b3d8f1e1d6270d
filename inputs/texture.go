package inputs

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is a 2D RGBA8 texture.
type Texture struct {
	textureID uint32
	width     int
	height    int
}

// toRGBA converts any image to RGBA, flipping it vertically if requested.
func toRGBA(img image.Image, flip bool) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	if flip {
		rgba = vflip(rgba)
	}
	return rgba
}

// vflip vertically flips the provided RGBA image.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// DecodeImage reads an image file in any registered format.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	log.Printf("Decoded %s image %s (%dx%d)", format, path, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// LoadTexture decodes path and uploads it.
func LoadTexture(path string, sampler Sampler) (*Texture, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(img, sampler)
}

// Checkerboard returns a size×size image of cells×cells alternating squares.
func Checkerboard(size, cells int, a, b color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

// NewTexture uploads img to a new GL texture.
func NewTexture(img image.Image, sampler Sampler) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("texture image is nil")
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("texture image is empty")
	}

	rgba := toRGBA(img, sampler.VFlip)
	width := int32(rgba.Rect.Dx())
	height := int32(rgba.Rect.Dy())

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	sampler.apply()

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	if sampler.mipmapped() {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{
		textureID: textureID,
		width:     int(width),
		height:    int(height),
	}, nil
}

func (t *Texture) ID() uint32 {
	return t.textureID
}

func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// Bind binds the texture to texture unit unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.textureID)
}

// Destroy releases the texture. Calling it again is a no-op.
func (t *Texture) Destroy() {
	if t.textureID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.textureID)
	t.textureID = 0
}
