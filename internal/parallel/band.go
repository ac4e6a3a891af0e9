// Package parallel provides the row-band worker pool used by the fractal
// engine.
//
// A grid is split into horizontal bands of whole rows. Bands never overlap,
// so each one can be iterated by a different worker without locking; the
// pool's ExecuteAll acts as the barrier between passes.
package parallel

// BandHeight is the preferred number of rows per band. Small bands keep
// work stealing effective when some rows escape much later than others.
const BandHeight = 8

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into bands of at most rows rows each.
// The last band may be shorter. rows <= 0 selects BandHeight.
// A non-positive height yields no bands.
func Bands(height, rows int) []Band {
	if height <= 0 {
		return nil
	}
	if rows <= 0 {
		rows = BandHeight
	}

	bands := make([]Band, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		bands = append(bands, Band{Y0: y, Y1: min(y+rows, height)})
	}
	return bands
}
