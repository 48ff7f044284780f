package composite

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// TestPixmapSetGet verifies pixel round-trips, including out-of-range
// channel values that float storage must preserve.
func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(4, 3)

	c := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	pm.SetPixel(2, 1, c)
	got := pm.GetPixel(2, 1)
	if math.Abs(got.R-c.R) > 1e-6 || math.Abs(got.G-c.G) > 1e-6 ||
		math.Abs(got.B-c.B) > 1e-6 || math.Abs(got.A-c.A) > 1e-6 {
		t.Errorf("GetPixel = %v, want %v", got, c)
	}

	// Negative channels (Subtract results) survive storage.
	pm.SetPixel(0, 0, RGBA{R: -0.5, A: 1})
	if got := pm.GetPixel(0, 0); got.R != -0.5 {
		t.Errorf("negative channel = %v, want -0.5", got.R)
	}
}

// TestPixmapBounds verifies out-of-bounds access is safe.
func TestPixmapBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(-1, 0, RGB(1, 1, 1))
	pm.SetPixel(0, 5, RGB(1, 1, 1))

	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("GetPixel(-1, 0) = %v, want transparent", got)
	}
	if got := pm.GetPixel(0, 5); got != Transparent {
		t.Errorf("GetPixel(0, 5) = %v, want transparent", got)
	}
}

// TestPixmapClear verifies Clear fills every pixel.
func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(RGBA{R: 0.5, G: 0.25, B: 0.125, A: 1})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); math.Abs(got.G-0.25) > 1e-6 {
				t.Fatalf("pixel (%d, %d) = %v after Clear", x, y, got)
			}
		}
	}
}

// TestFromImage verifies stdlib image import keeps premultiplied values.
func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 128, B: 0, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 64, G: 64, B: 64, A: 128}) // premultiplied half-alpha gray

	pm := FromImage(img)
	if pm.Width() != 2 || pm.Height() != 1 {
		t.Fatalf("dimensions = %dx%d, want 2x1", pm.Width(), pm.Height())
	}

	c := pm.GetPixel(0, 0)
	if math.Abs(c.R-1) > 0.01 || math.Abs(c.G-128.0/255) > 0.01 || c.B != 0 {
		t.Errorf("pixel 0 = %v", c)
	}

	c = pm.GetPixel(1, 0)
	if math.Abs(c.A-128.0/255) > 0.01 || math.Abs(c.R-64.0/255) > 0.01 {
		t.Errorf("pixel 1 = %v, want premultiplied (0.25.., a=0.5..)", c)
	}
}

// TestToImageClamps verifies export clamps out-of-range channels.
func TestToImageClamps(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, RGBA{R: -0.5, G: 1.5, B: 0.5, A: 1})

	img := pm.ToImage()
	c := img.RGBAAt(0, 0)
	if c.R != 0 {
		t.Errorf("negative channel exported as %d, want 0", c.R)
	}
	if c.G != 255 {
		t.Errorf("overflowing channel exported as %d, want 255", c.G)
	}
	if c.B != 128 {
		t.Errorf("mid channel exported as %d, want 128", c.B)
	}
}

// TestFromImageScaled verifies size adoption.
func TestFromImageScaled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	pm := FromImageScaled(img, 4, 4)
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", pm.Width(), pm.Height())
	}
	if c := pm.GetPixel(2, 2); math.Abs(c.R-200.0/255) > 0.02 {
		t.Errorf("scaled pixel = %v", c)
	}

	// Same-size path takes the direct conversion.
	same := FromImageScaled(img, 8, 8)
	if same.Width() != 8 || same.Height() != 8 {
		t.Errorf("same-size dimensions = %dx%d", same.Width(), same.Height())
	}
}
