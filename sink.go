package fractal

import (
	"strconv"
	"strings"
)

// FileSink writes every presented frame to disk. The format follows the
// file extension (.png or .bmp).
//
// If Path contains %d, its first occurrence is replaced by the frame
// number, counted from zero; otherwise every frame overwrites the same
// file, leaving the last one.
type FileSink struct {
	Path string

	// Overlay, if set, draws on a copy of the pixmap before it is written.
	// The presented pixmap itself is never modified.
	Overlay func(pm *Pixmap)

	frames  int
	scratch *Pixmap
}

// Present implements Sink.
func (s *FileSink) Present(pm *Pixmap) error {
	path := strings.Replace(s.Path, "%d", strconv.Itoa(s.frames), 1)

	out := pm
	if s.Overlay != nil {
		s.scratch = pm.copyInto(s.scratch)
		s.Overlay(s.scratch)
		out = s.scratch
	}
	if err := out.Save(path); err != nil {
		return err
	}
	s.frames++
	Logger().Info("fractal: frame written", "path", path)
	return nil
}

// Frames returns the number of frames written.
func (s *FileSink) Frames() int {
	return s.frames
}
