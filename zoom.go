package fractal

// Direction is the sense of a zoom step.
type Direction int

const (
	// ZoomIn magnifies the picture by ZoomStep.
	ZoomIn Direction = iota
	// ZoomOut shrinks the picture by ZoomStep, never below MinZoom.
	ZoomOut
)

// String returns "in" or "out".
func (d Direction) String() string {
	switch d {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "unknown"
	}
}

const (
	// ZoomStep is the relative zoom change of a single step.
	ZoomStep = 0.1

	// MinZoom is the zoom floor. Zooming out past it is silently clamped.
	MinZoom = 1.0
)

// ZoomAt returns the viewport after one zoom step anchored at pixel (mx, my).
//
// The plane point under the cursor before the step is still under the
// cursor after it, up to floating-point rounding. The cursor must be on
// the grid; callers reject other positions before getting here.
//
// Once the zoom sits at MinZoom, further ZoomOut steps return v unchanged.
func (v Viewport) ZoomAt(dir Direction, mx, my int) Viewport {
	oldZoom := v.Zoom
	newZoom := oldZoom
	switch dir {
	case ZoomIn:
		newZoom = oldZoom + ZoomStep*oldZoom
	case ZoomOut:
		newZoom = max(oldZoom-ZoomStep*oldZoom, MinZoom)
	}

	// The cursor sits at offset (cursor-origin)·oldZoom in zoom-1 units.
	// Keeping it fixed needs newOrigin = cursor - (cursor-origin)·old/new,
	// i.e. a move toward the cursor by (new-old)/new of the distance.
	cursor := v.Plane(mx, my)
	scale := (newZoom - oldZoom) / newZoom

	return Viewport{
		Origin: v.Origin + (cursor-v.Origin)*complex(scale, 0),
		Zoom:   newZoom,
		Width:  v.Width,
		Height: v.Height,
	}
}
