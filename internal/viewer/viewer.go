// Package viewer is the interactive window front end of the fractal
// viewer. It adapts ebiten's per-tick input to fractal events and presents
// rendered frames by uploading them to a window-sized texture.
//
// Controls:
//
//	mouse wheel     zoom in/out at the cursor
//	H               toggle the status overlay
//	Q, Escape       quit (closing the window also quits)
package viewer

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/hud"
)

// Title is the window title.
const Title = "Fractal Viewer"

// Viewer implements ebiten.Game around a fractal.Session. It is both the
// session's EventSource and its Sink.
//
// The status overlay lives in its own texture drawn over the frame, so the
// fractal pixels are never touched and toggling it never re-renders.
type Viewer struct {
	session *fractal.Session
	overlay *hud.Overlay
	showHUD bool

	width, height int
	texture       *ebiten.Image

	hud        *image.RGBA
	hudTexture *ebiten.Image

	lastX, lastY int
}

// New creates a viewer for s. overlay may be nil to disable the status
// overlay entirely; otherwise showHUD sets its initial visibility.
func New(s *fractal.Session, overlay *hud.Overlay, showHUD bool) *Viewer {
	v := s.Viewport()
	return &Viewer{
		session: s,
		overlay: overlay,
		showHUD: showHUD && overlay != nil,
		width:   v.Width,
		height:  v.Height,
		lastX:   -1,
		lastY:   -1,
	}
}

// Run opens the window and blocks until the user quits.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	fractal.Logger().Debug("viewer: opening window", "width", v.width, "height", v.height)
	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

// Poll implements fractal.EventSource.
func (v *Viewer) Poll() []fractal.Event {
	return v.apply(v.readInput())
}

// apply handles the viewer-local part of in and returns the session events.
func (v *Viewer) apply(in input) []fractal.Event {
	if in.toggleHUD && v.overlay != nil {
		v.showHUD = !v.showHUD
	}
	return in.events()
}

func (v *Viewer) readInput() input {
	x, y := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()

	in := input{
		wheelY:    wheelY,
		x:         x,
		y:         y,
		moved:     x != v.lastX || y != v.lastY,
		toggleHUD: inpututil.IsKeyJustPressed(ebiten.KeyH),
		quit: ebiten.IsWindowBeingClosed() ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
	v.lastX, v.lastY = x, y
	return in
}

// Present implements fractal.Sink by uploading pm to the window texture
// and refreshing the overlay texture.
func (v *Viewer) Present(pm *fractal.Pixmap) error {
	if pm.Width() != v.width || pm.Height() != v.height {
		return fmt.Errorf("viewer: frame is %dx%d, window is %dx%d",
			pm.Width(), pm.Height(), v.width, v.height)
	}
	if v.texture == nil {
		v.texture = ebiten.NewImage(v.width, v.height)
	}
	v.texture.WritePixels(pm.Data())

	if v.overlay != nil {
		img := v.composeHUD()
		if v.hudTexture == nil {
			v.hudTexture = ebiten.NewImage(v.width, v.height)
		}
		v.hudTexture.WritePixels(img.Pix)
	}
	return nil
}

// composeHUD draws the overlay for the current session state onto a
// transparent window-sized image.
func (v *Viewer) composeHUD() *image.RGBA {
	if v.hud == nil {
		v.hud = image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	} else {
		clear(v.hud.Pix)
	}
	st := v.session.Stats()
	vp := v.session.Viewport()
	v.overlay.Draw(v.hud, hud.Info{
		Zoom:    vp.Zoom,
		Origin:  vp.Origin,
		Elapsed: st.Elapsed,
		Passes:  st.Passes,
	})
	return v.hud
}

// Update implements ebiten.Game. It runs one cycle of the control loop:
// poll, apply, and render if the viewport changed. Rendering is
// synchronous, so input arriving meanwhile waits for the next tick.
func (v *Viewer) Update() error {
	for _, ev := range v.Poll() {
		v.session.Handle(ev)
	}
	if v.session.Done() {
		return ebiten.Termination
	}

	pm, ok, err := v.session.Frame()
	if err != nil {
		return err
	}
	if ok {
		return v.Present(pm)
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.texture != nil {
		screen.DrawImage(v.texture, &ebiten.DrawImageOptions{})
	}
	if v.showHUD && v.hudTexture != nil {
		screen.DrawImage(v.hudTexture, &ebiten.DrawImageOptions{})
	}
}

// Layout implements ebiten.Game. The logical screen is always the fractal
// grid; ebiten scales it if the window is resized.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}
