package ink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// Pixmap represents a rectangular RGBA pixel buffer. It backs the
// software render target and raster export.
type Pixmap struct {
	width  int
	height int
	img    *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Image returns the backing image. Mutations write through to the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	c := p.img.RGBAAt(x, y)
	if c.A == 0 {
		return Transparent
	}
	// Un-premultiply back to straight alpha.
	a := float64(c.A) / 255
	return RGBA{
		R: float64(c.R) / 255 / a,
		G: float64(c.G) / 255 / a,
		B: float64(c.B) / 255 / a,
		A: a,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	pre := color.RGBAModel.Convert(c.Color()).(color.RGBA)
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = pre.R
		pix[i+1] = pre.G
		pix[i+2] = pre.B
		pix[i+3] = pre.A
	}
}

// EncodePNG encodes the pixmap as PNG bytes.
func (p *Pixmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
