// Package fractal renders an escape-time fractal over a zoomable viewport.
//
// # Overview
//
// Every pixel of the output grid is mapped onto a point c of the complex
// plane and iterated through
//
//	z₀ = 0
//	zₙ₊₁ = (|Re zₙ| - i|Im zₙ|)² + c
//
// until |z| exceeds 2 or the iteration budget runs out. The iteration count
// is turned into a grayscale pixel: points that escape quickly are near
// white, points that never escape are near black.
//
// # Quick Start
//
//	import "github.com/gogpu/fractal"
//
//	r, err := fractal.NewRenderer(fractal.WithSize(720, 480))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	v := r.Config().Viewport()
//	v = v.ZoomAt(fractal.ZoomIn, 360, 240)
//	pm, err := r.Render(v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = pm.Save("fractal.png")
//
// # Architecture
//
// The package is organized leaf-first:
//   - Viewport: pure pixel ↔ plane transform and cursor-anchored zoom
//   - Engine: pass-synchronous parallel iteration over a Frame
//   - Gray: iteration count → grayscale RGBA
//   - Renderer: one generation cycle from Viewport to Pixmap
//   - Session and Run: the single-threaded control loop between an
//     EventSource and a Sink
//
// # Coordinate System
//
// Pixel coordinates have their origin at the top-left, X grows right and
// Y grows down. Plane coordinates grow up, so the transform flips Y.
//
// # Pixel Layout
//
// Pixmap stores R, G, B, A bytes per pixel in row-major order. Read as a
// big-endian 32-bit word (see Pixmap.Packed) this is RGBA8888 with red in
// the most significant byte and alpha in the least significant byte.
package fractal

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
