// Package hud draws the status overlay of the fractal viewer: zoom level,
// view origin and last render time, in a fixed bitmap font.
package hud

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Info is the state shown by the overlay.
type Info struct {
	Zoom    float64
	Origin  complex128
	Elapsed time.Duration
	Passes  int
}

const (
	margin  = 4
	padding = 3
)

// Overlay renders Info onto images.
type Overlay struct {
	// Color is the text colour. Defaults to yellow.
	Color color.Color

	// Background is drawn behind the text block. nil draws no box.
	Background color.Color

	face    font.Face
	printer *message.Printer
}

// New returns an overlay formatting numbers for the given language.
func New(tag language.Tag) *Overlay {
	return &Overlay{
		Color:      color.RGBA{R: 0xFF, G: 0xCC, A: 0xFF},
		Background: color.RGBA{A: 0xA0},
		face:       basicfont.Face7x13,
		printer:    message.NewPrinter(tag),
	}
}

// Lines formats info into the overlay text.
func (o *Overlay) Lines(info Info) []string {
	p := o.printer
	return []string{
		p.Sprintf("zoom   %.4f", info.Zoom),
		p.Sprintf("origin %.10f %+.10fi", real(info.Origin), imag(info.Origin)),
		p.Sprintf("render %v (%d passes)", info.Elapsed.Round(time.Microsecond), info.Passes),
	}
}

// Draw paints the overlay in the top-left corner of dst and returns the
// rectangle it covered.
func (o *Overlay) Draw(dst draw.Image, info Info) image.Rectangle {
	return o.DrawLines(dst, o.Lines(info))
}

// DrawLines paints lines in the top-left corner of dst.
func (o *Overlay) DrawLines(dst draw.Image, lines []string) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}

	metrics := o.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(o.Color),
		Face: o.face,
	}

	width := 0
	for _, l := range lines {
		width = max(width, d.MeasureString(l).Ceil())
	}
	box := image.Rect(margin, margin,
		margin+width+2*padding, margin+len(lines)*lineHeight+2*padding).
		Intersect(dst.Bounds())

	if o.Background != nil {
		draw.Draw(dst, box, image.NewUniform(o.Background), image.Point{}, draw.Over)
	}

	for i, l := range lines {
		d.Dot = fixed.P(margin+padding, margin+padding+ascent+i*lineHeight)
		d.DrawString(l)
	}
	return box
}
