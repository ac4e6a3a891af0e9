package fractal

// Index returns the offset of pixel (x, y) in a row-major grid of the
// given width.
func Index(x, y, width int) int {
	return y*width + x
}

// Frame holds the working buffers of one generation cycle: the coordinate
// field, the per-pixel iteration state, and the resulting iteration grid.
//
// A Frame belongs to a single Renderer. It is reset at the start of every
// cycle and must not be shared with a generation that is still running.
type Frame struct {
	width  int
	height int

	// Field is the per-pixel constant c.
	Field []complex128

	// Iterations is the escape count of every pixel, in [0, MaxIteration].
	Iterations []int

	z    []complex128
	live []bool
}

// NewFrame allocates a frame for a width x height grid.
func NewFrame(width, height int) *Frame {
	n := width * height
	f := &Frame{
		width:      width,
		height:     height,
		Field:      make([]complex128, n),
		Iterations: make([]int, n),
		z:          make([]complex128, n),
		live:       make([]bool, n),
	}
	f.Reset()
	return f
}

// Width returns the grid width.
func (f *Frame) Width() int { return f.width }

// Height returns the grid height.
func (f *Frame) Height() int { return f.height }

// Reset clears the iteration state so the frame can be iterated again.
// Field is left untouched; it is rewritten by Viewport.FillField.
func (f *Frame) Reset() {
	clear(f.Iterations)
	clear(f.z)
	for i := range f.live {
		f.live[i] = true
	}
}

// At returns the iteration count of pixel (x, y).
func (f *Frame) At(x, y int) int {
	return f.Iterations[Index(x, y, f.width)]
}

// Z returns the last iterated value of pixel (x, y). For an escaped pixel
// this is the first value whose magnitude exceeded 2.
func (f *Frame) Z(x, y int) complex128 {
	return f.z[Index(x, y, f.width)]
}

// Live reports whether pixel (x, y) is still being iterated.
func (f *Frame) Live(x, y int) bool {
	return f.live[Index(x, y, f.width)]
}
