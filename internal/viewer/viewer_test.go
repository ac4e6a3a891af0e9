package viewer

import (
	"bytes"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/hud"
)

func newTestSession(t *testing.T) *fractal.Session {
	t.Helper()
	r, err := fractal.NewRenderer(fractal.WithSize(120, 80), fractal.WithWorkers(1))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	t.Cleanup(r.Close)
	return fractal.NewSession(r)
}

func TestToggleHUDDoesNotRender(t *testing.T) {
	s := newTestSession(t)
	if _, _, err := s.Frame(); err != nil {
		t.Fatal(err)
	}

	v := New(s, hud.New(language.English), true)
	for i, want := range []bool{false, true, false} {
		if evs := v.apply(input{toggleHUD: true}); len(evs) != 0 {
			t.Errorf("toggle %d produced events %v", i, evs)
		}
		if v.showHUD != want {
			t.Errorf("toggle %d: showHUD = %v, want %v", i, v.showHUD, want)
		}
		if s.Dirty() {
			t.Fatalf("toggle %d marked the session dirty", i)
		}
		if _, ok, _ := s.Frame(); ok {
			t.Fatalf("toggle %d triggered a render", i)
		}
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

func TestToggleHUDWithoutOverlay(t *testing.T) {
	v := New(newTestSession(t), nil, true)
	if v.showHUD {
		t.Fatal("showHUD should be off without an overlay")
	}
	v.apply(input{toggleHUD: true})
	if v.showHUD {
		t.Error("toggle without an overlay should keep it off")
	}
}

func TestComposeHUDLeavesFrameUntouched(t *testing.T) {
	s := newTestSession(t)
	pm, _, err := s.Frame()
	if err != nil {
		t.Fatal(err)
	}
	before := bytes.Clone(pm.Data())

	v := New(s, hud.New(language.English), true)
	img := v.composeHUD()

	if !bytes.Equal(before, pm.Data()) {
		t.Error("composing the overlay modified the frame")
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("overlay bounds = %v, want 120x80", b)
	}
	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("overlay image is empty")
	}
	if img.RGBAAt(119, 79).A != 0 {
		t.Error("overlay should be transparent outside its box")
	}

	// A second compose starts from a cleared image.
	img.Pix[len(img.Pix)-1] = 0xFF
	if v.composeHUD().RGBAAt(119, 79).A != 0 {
		t.Error("composeHUD did not clear the previous overlay")
	}
}
