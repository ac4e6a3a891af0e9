package fractal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidScript is returned by ParseScript for malformed input.
var ErrInvalidScript = errors.New("fractal: invalid event script")

// ParseScript parses a list of input events for headless runs.
//
// Steps are separated by ';', ',' is reserved for coordinates:
//
//	in@360,240      zoom in at pixel (360, 240)
//	out@0,0*5       zoom out at (0, 0) five times
//	quit            stop
//
// Whitespace around steps is ignored. Cursor bounds are not checked here;
// Session.Handle drops out-of-grid zooms.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	for _, step := range strings.Split(script, ";") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		evs, err := parseStep(step)
		if err != nil {
			return nil, err
		}
		events = append(events, evs...)
	}
	return events, nil
}

func parseStep(step string) ([]Event, error) {
	repeat := 1
	if body, count, ok := strings.Cut(step, "*"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad repeat count in %q", ErrInvalidScript, step)
		}
		step, repeat = strings.TrimSpace(body), n
	}

	if step == "quit" {
		if repeat != 1 {
			return nil, fmt.Errorf("%w: quit cannot repeat", ErrInvalidScript)
		}
		return []Event{{Kind: EventQuit}}, nil
	}

	verb, at, ok := strings.Cut(step, "@")
	if !ok {
		return nil, fmt.Errorf("%w: missing cursor in %q", ErrInvalidScript, step)
	}

	var kind EventKind
	switch strings.TrimSpace(verb) {
	case "in":
		kind = EventZoomIn
	case "out":
		kind = EventZoomOut
	default:
		return nil, fmt.Errorf("%w: unknown step %q", ErrInvalidScript, verb)
	}

	xs, ys, ok := strings.Cut(at, ",")
	if !ok {
		return nil, fmt.Errorf("%w: cursor %q is not x,y", ErrInvalidScript, at)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return nil, fmt.Errorf("%w: cursor %q is not x,y", ErrInvalidScript, at)
	}

	events := make([]Event, repeat)
	for i := range events {
		events[i] = Event{Kind: kind, X: x, Y: y}
	}
	return events, nil
}

// ScriptSource replays a fixed list of events, one per Poll, and reports
// EventQuit once the list is exhausted.
type ScriptSource struct {
	events []Event
	next   int
}

// NewScriptSource returns a source replaying events.
func NewScriptSource(events []Event) *ScriptSource {
	return &ScriptSource{events: events}
}

// Poll returns the next scripted event.
func (s *ScriptSource) Poll() []Event {
	if s.next >= len(s.events) {
		return []Event{{Kind: EventQuit}}
	}
	ev := s.events[s.next]
	s.next++
	return []Event{ev}
}
