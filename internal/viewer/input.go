package viewer

import "github.com/gogpu/fractal"

// input is one tick's worth of raw window input.
type input struct {
	wheelY    float64
	x, y      int
	moved     bool
	quit      bool
	toggleHUD bool
}

// events translates raw input into session events. A wheel tick zooms at
// the cursor; the sign of the vertical offset picks the direction.
func (in input) events() []fractal.Event {
	var evs []fractal.Event
	if in.moved {
		evs = append(evs, fractal.Event{Kind: fractal.EventMotion, X: in.x, Y: in.y})
	}
	switch {
	case in.wheelY > 0:
		evs = append(evs, fractal.Event{Kind: fractal.EventZoomIn, X: in.x, Y: in.y})
	case in.wheelY < 0:
		evs = append(evs, fractal.Event{Kind: fractal.EventZoomOut, X: in.x, Y: in.y})
	}
	if in.quit {
		evs = append(evs, fractal.Event{Kind: fractal.EventQuit})
	}
	return evs
}
