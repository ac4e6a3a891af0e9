package viewer

import (
	"testing"

	"github.com/gogpu/fractal"
)

func TestInputEvents(t *testing.T) {
	tests := []struct {
		name string
		in   input
		want []fractal.Event
	}{
		{
			name: "idle",
			in:   input{x: 5, y: 5},
			want: nil,
		},
		{
			name: "wheel up zooms in at cursor",
			in:   input{wheelY: 1, x: 300, y: 200},
			want: []fractal.Event{{Kind: fractal.EventZoomIn, X: 300, Y: 200}},
		},
		{
			name: "fractional wheel down zooms out",
			in:   input{wheelY: -0.25, x: 1, y: 2},
			want: []fractal.Event{{Kind: fractal.EventZoomOut, X: 1, Y: 2}},
		},
		{
			name: "motion then zoom",
			in:   input{wheelY: 2, x: 7, y: 8, moved: true},
			want: []fractal.Event{
				{Kind: fractal.EventMotion, X: 7, Y: 8},
				{Kind: fractal.EventZoomIn, X: 7, Y: 8},
			},
		},
		{
			name: "quit comes last",
			in:   input{wheelY: -1, quit: true},
			want: []fractal.Event{
				{Kind: fractal.EventZoomOut},
				{Kind: fractal.EventQuit},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.events()
			if len(got) != len(tt.want) {
				t.Fatalf("events() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
