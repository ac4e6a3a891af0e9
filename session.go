package fractal

import (
	"context"
	"fmt"
)

// EventKind identifies an input event.
type EventKind int

const (
	// EventQuit ends the session.
	EventQuit EventKind = iota
	// EventZoomIn zooms in, anchored at the event's cursor pixel.
	EventZoomIn
	// EventZoomOut zooms out, anchored at the event's cursor pixel.
	EventZoomOut
	// EventMotion reports cursor movement. It never changes the view.
	EventMotion
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventZoomIn:
		return "zoom-in"
	case EventZoomOut:
		return "zoom-out"
	case EventMotion:
		return "motion"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a discrete input event. X and Y are the cursor pixel.
type Event struct {
	Kind EventKind
	X, Y int
}

// EventSource delivers input events. Poll returns the events observed
// since the previous call; it may block until at least one is available.
type EventSource interface {
	Poll() []Event
}

// Sink presents a completed frame. The pixmap is only valid for the
// duration of the call.
type Sink interface {
	Present(pm *Pixmap) error
}

// Session is the single-threaded control loop state: it owns the viewport,
// applies input events to it, and regenerates the image only when the
// viewport changed.
type Session struct {
	renderer *Renderer
	view     Viewport
	dirty    bool
	done     bool
	frames   int
}

// NewSession starts a session at the renderer's initial viewport. The
// first call to Frame always renders.
func NewSession(r *Renderer) *Session {
	return &Session{
		renderer: r,
		view:     r.Config().Viewport(),
		dirty:    true,
	}
}

// Handle applies a single event. Zoom events whose cursor lies outside the
// grid are dropped.
func (s *Session) Handle(ev Event) {
	log := Logger()

	switch ev.Kind {
	case EventQuit:
		s.done = true

	case EventZoomIn, EventZoomOut:
		if !s.view.Contains(ev.X, ev.Y) {
			log.Warn("fractal: zoom cursor outside grid, event dropped",
				"kind", ev.Kind, "x", ev.X, "y", ev.Y)
			return
		}
		dir := ZoomIn
		if ev.Kind == EventZoomOut {
			dir = ZoomOut
		}
		next := s.view.ZoomAt(dir, ev.X, ev.Y)
		if next != s.view {
			s.view = next
			s.dirty = true
		}
		log.Info("fractal: zoom", "direction", dir, "zoom", s.view.Zoom, "origin", s.view.Origin)

	case EventMotion:
		log.Debug("fractal: cursor", "x", ev.X, "y", ev.Y)
	}
}

// Invalidate forces the next Frame call to render, for example after an
// overlay setting changed.
func (s *Session) Invalidate() {
	s.dirty = true
}

// Viewport returns the current viewport.
func (s *Session) Viewport() Viewport {
	return s.view
}

// Dirty reports whether the next Frame call will render.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Done reports whether a quit event was handled.
func (s *Session) Done() bool {
	return s.done
}

// Frames returns the number of frames rendered so far.
func (s *Session) Frames() int {
	return s.frames
}

// Stats returns statistics for the last rendered frame.
func (s *Session) Stats() Stats {
	return s.renderer.Stats()
}

// Frame renders the current viewport if it changed since the last frame.
// It returns the new pixmap and true, or nil and false when nothing changed.
func (s *Session) Frame() (*Pixmap, bool, error) {
	if !s.dirty {
		return nil, false, nil
	}
	pm, err := s.renderer.Render(s.view)
	if err != nil {
		return nil, false, err
	}
	s.dirty = false
	s.frames++
	return pm, true, nil
}

// Run drives s from src to sink until a quit event arrives or ctx is done.
// Each cycle presents a new frame if the viewport changed, then polls input
// and applies it; the initial view is presented before the first poll.
// Generation is synchronous, so events that arrive while a frame renders
// are handled in the next cycle. ctx is only checked between cycles; a
// running generation is never interrupted.
func Run(ctx context.Context, s *Session, src EventSource, sink Sink) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		pm, ok, err := s.Frame()
		if err != nil {
			return err
		}
		if ok {
			if err := sink.Present(pm); err != nil {
				return fmt.Errorf("fractal: present frame %d: %w", s.Frames(), err)
			}
		}

		for _, ev := range src.Poll() {
			s.Handle(ev)
		}
		if s.Done() {
			return nil
		}
	}
}
