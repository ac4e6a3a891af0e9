package fractal

import (
	"context"
	"errors"
	"math/cmplx"
	"testing"
)

type recordSink struct {
	frames []uint32 // packed centre pixel of each frame
	err    error
}

func (s *recordSink) Present(pm *Pixmap) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, pm.Packed(pm.Width()/2, pm.Height()/2))
	return nil
}

type batchSource struct {
	batches [][]Event
}

func (s *batchSource) Poll() []Event {
	if len(s.batches) == 0 {
		return []Event{{Kind: EventQuit}}
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

func TestSession_FirstFrameRenders(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(32, 24)))
	if !s.Dirty() {
		t.Fatal("new session should be dirty")
	}

	pm, ok, err := s.Frame()
	if err != nil || !ok || pm == nil {
		t.Fatalf("Frame() = %v, %v, %v", pm, ok, err)
	}
	if _, ok, _ := s.Frame(); ok {
		t.Error("second Frame() without input should not render")
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

func TestSession_ZoomMarksDirty(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(32, 24)))
	_, _, _ = s.Frame()

	s.Handle(Event{Kind: EventZoomIn, X: 5, Y: 7})
	if !s.Dirty() {
		t.Error("zoom in should mark the session dirty")
	}
	if got := s.Viewport().Zoom; got <= 1 {
		t.Errorf("Zoom = %v, want > 1", got)
	}
}

func TestSession_ZoomOutAtFloorIsNoop(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(32, 24)))
	_, _, _ = s.Frame()

	before := s.Viewport()
	s.Handle(Event{Kind: EventZoomOut, X: 3, Y: 3})
	if s.Dirty() {
		t.Error("zoom out at the floor should not trigger a render")
	}
	if s.Viewport() != before {
		t.Errorf("viewport changed: %+v -> %+v", before, s.Viewport())
	}
}

func TestSession_RejectsOutOfGridCursor(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(32, 24)))
	_, _, _ = s.Frame()

	before := s.Viewport()
	for _, ev := range []Event{
		{Kind: EventZoomIn, X: 32, Y: 0},
		{Kind: EventZoomIn, X: -1, Y: 0},
		{Kind: EventZoomOut, X: 0, Y: 24},
	} {
		s.Handle(ev)
	}
	if s.Dirty() || s.Viewport() != before {
		t.Error("out-of-grid zoom events should be dropped")
	}
}

func TestSession_MotionDoesNotRender(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(32, 24)))
	_, _, _ = s.Frame()

	s.Handle(Event{Kind: EventMotion, X: 1, Y: 2})
	if s.Dirty() {
		t.Error("motion should not mark the session dirty")
	}
}

func TestSession_Invalidate(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(16, 16)))
	_, _, _ = s.Frame()

	s.Invalidate()
	if _, ok, _ := s.Frame(); !ok {
		t.Error("Frame() after Invalidate should render")
	}
}

func TestRun_RendersOncePerChange(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(40, 30)))
	src := &batchSource{batches: [][]Event{
		nil,
		{{Kind: EventMotion, X: 3, Y: 3}},
		{{Kind: EventZoomIn, X: 20, Y: 15}, {Kind: EventZoomIn, X: 20, Y: 15}},
		{{Kind: EventZoomOut, X: 0, Y: 0}},
	}}
	sink := &recordSink{}

	if err := Run(context.Background(), s, src, sink); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame, one for the batch of two zoom-ins, one for the zoom-out.
	if len(sink.frames) != 3 {
		t.Errorf("presented %d frames, want 3", len(sink.frames))
	}
	if !s.Done() {
		t.Error("session should be done after quit")
	}
}

func TestRun_CursorPointFixedAcrossFrames(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(48, 32)))
	anchor := s.Viewport().Plane(40, 5)

	events, err := ParseScript("in@40,5*12; out@40,5*4")
	if err != nil {
		t.Fatal(err)
	}
	if err := Run(context.Background(), s, NewScriptSource(events), &recordSink{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if d := cmplx.Abs(s.Viewport().Plane(40, 5) - anchor); d > 1e-9 {
		t.Errorf("cursor point drifted by %g", d)
	}
	if s.Frames() != 17 {
		t.Errorf("Frames() = %d, want 17", s.Frames())
	}
}

func TestRun_SinkError(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(16, 16)))
	want := errors.New("surface lost")

	src := &batchSource{batches: [][]Event{nil}}
	err := Run(context.Background(), s, src, &recordSink{err: want})
	if !errors.Is(err, want) {
		t.Errorf("Run() error = %v, want %v", err, want)
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	s := NewSession(newTestRenderer(t, WithSize(16, 16)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, s, &batchSource{}, &recordSink{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if s.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", s.Frames())
	}
}

func TestEventKind_String(t *testing.T) {
	tests := map[EventKind]string{
		EventQuit:     "quit",
		EventZoomIn:   "zoom-in",
		EventZoomOut:  "zoom-out",
		EventMotion:   "motion",
		EventKind(42): "EventKind(42)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
