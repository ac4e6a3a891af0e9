package fractal

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned when an image format cannot be derived from
// a file name.
var ErrUnknownFormat = errors.New("fractal: unknown image format")

// Pixmap is the pixel grid handed to a Sink.
//
// Pixels are stored row-major from the top-left corner as R, G, B, A bytes,
// the same layout as image.RGBA.Pix. Packed exposes a pixel as a single
// RGBA8888 word.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
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

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetRGBA sets a single pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := Index(x, y, p.width) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// RGBAAt returns a single pixel, or transparent black when out of bounds.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := Index(x, y, p.width) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Packed returns pixel (x, y) as RGBA8888: red in the most significant
// byte, alpha in the least significant byte.
func (p *Pixmap) Packed(x, y int) uint32 {
	return Pack(p.RGBAAt(x, y))
}

// Colorize writes Gray(it, maxIter) for every count in iterations, which
// must be a row-major grid of the pixmap's size.
func (p *Pixmap) Colorize(iterations []int, maxIter int) {
	for i, it := range iterations {
		v := Intensity(it, maxIter)
		o := i * 4
		p.data[o+0] = v
		p.data[o+1] = v
		p.data[o+2] = v
		p.data[o+3] = 0xFF
	}
}

// copyInto copies p into dst, reallocating dst if its size differs, and
// returns it.
func (p *Pixmap) copyInto(dst *Pixmap) *Pixmap {
	if dst == nil || dst.width != p.width || dst.height != p.height {
		dst = NewPixmap(p.width, p.height)
	}
	copy(dst.data, p.data)
	return dst
}

// ToImage copies the pixmap into an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Encode writes the pixmap to w in the given format ("png" or "bmp").
func (p *Pixmap) Encode(w io.Writer, format string) error {
	img := p.ToImage()
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes the pixmap to path, choosing the format from its extension.
func (p *Pixmap) Save(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(format) {
	case "png", "bmp":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements draw.Image so overlays can draw straight into the pixmap.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}
