package fractal

// Viewport is the rectangle of the complex plane mapped onto a pixel grid.
//
// At zoom 1 the plane spans ±2 vertically around Origin and ±2·aspect
// horizontally, so the picture is never stretched. Width and Height are
// fixed for the lifetime of a Renderer; the aspect ratio is always derived
// from them.
type Viewport struct {
	Origin complex128
	Zoom   float64
	Width  int
	Height int
}

// Bounds are the plane coordinates of the viewport edges.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

// Aspect returns Width / Height.
func (v Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// Bounds returns the plane coordinates of the viewport edges.
// Zoom must be positive.
func (v Viewport) Bounds() Bounds {
	halfW := 2 * v.Aspect() / v.Zoom
	halfH := 2 / v.Zoom
	re, im := real(v.Origin), imag(v.Origin)
	return Bounds{
		Left:   re - halfW,
		Right:  re + halfW,
		Top:    im + halfH,
		Bottom: im - halfH,
	}
}

// Step returns the plane distance between horizontally and vertically
// adjacent pixels. The first and last pixel sit exactly on the bounds, so
// the spacing divides by Width-1 and Height-1.
func (v Viewport) Step() (dx, dy float64) {
	b := v.Bounds()
	dx = (b.Right - b.Left) / float64(v.Width-1)
	dy = (b.Top - b.Bottom) / float64(v.Height-1)
	return dx, dy
}

// Plane maps pixel (x, y) to its point on the complex plane.
func (v Viewport) Plane(x, y int) complex128 {
	b := v.Bounds()
	dx, dy := v.Step()
	return complex(b.Left+float64(x)*dx, b.Top-float64(y)*dy)
}

// Pixel is the inverse of Plane. The result is fractional; points outside
// the viewport yield coordinates outside [0, Width) x [0, Height).
func (v Viewport) Pixel(c complex128) (x, y float64) {
	b := v.Bounds()
	dx, dy := v.Step()
	return (real(c) - b.Left) / dx, (b.Top - imag(c)) / dy
}

// Contains reports whether pixel (x, y) lies on the grid.
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

// FillField writes Plane(x, y) for every pixel into field, row-major.
// field must hold at least Width*Height values.
func (v Viewport) FillField(field []complex128) {
	b := v.Bounds()
	dx, dy := v.Step()
	for y := 0; y < v.Height; y++ {
		im := b.Top - float64(y)*dy
		row := field[Index(0, y, v.Width) : Index(0, y, v.Width)+v.Width]
		for x := range row {
			row[x] = complex(b.Left+float64(x)*dx, im)
		}
	}
}
