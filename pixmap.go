package composite

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer with four float32 channels
// per pixel (RGBA, premultiplied alpha).
//
// Float storage mirrors the floating-point color attachments the blend
// stage targets on a GPU: blend results are stored without clamping, so a
// Subtract pass can legitimately hold negative channels until export.
type Pixmap struct {
	width  int
	height int
	data   []float32 // RGBA, 4 values per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw channel data (RGBA order, 4 values per pixel).
func (p *Pixmap) Data() []float32 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates are
// ignored. The color is stored as given, without clamping.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = float32(c.R)
	p.data[i+1] = float32(c.G)
	p.data[i+2] = float32(c.B)
	p.data[i+3] = float32(c.A)
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// return transparent black.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]),
		G: float64(p.data[i+1]),
		B: float64(p.data[i+2]),
		A: float64(p.data[i+3]),
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := float32(c.R)
	g := float32(c.G)
	b := float32(c.B)
	a := float32(c.A)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA (premultiplied bytes),
// clamping each channel to [0, 1].
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < len(p.data); i += 4 {
		img.Pix[i+0] = uint8(clamp01(float64(p.data[i+0]))*255 + 0.5)
		img.Pix[i+1] = uint8(clamp01(float64(p.data[i+1]))*255 + 0.5)
		img.Pix[i+2] = uint8(clamp01(float64(p.data[i+2]))*255 + 0.5)
		img.Pix[i+3] = uint8(clamp01(float64(p.data[i+3]))*255 + 0.5)
	}
	return img
}

// FromImage creates a pixmap from an image. Channels arrive premultiplied
// via color.Color.RGBA(), matching the pixmap's convention.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// FromImageScaled creates a pixmap of the given dimensions from an image,
// scaling with bilinear filtering when the sizes differ.
func FromImageScaled(img image.Image, width, height int) *Pixmap {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return FromImage(img)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
	return FromImage(scaled)
}

// SavePNG saves the pixmap to a PNG file, clamping channels on export.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
