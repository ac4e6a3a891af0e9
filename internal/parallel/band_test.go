package parallel

import "testing"

func TestBands(t *testing.T) {
	tests := []struct {
		name   string
		height int
		rows   int
		want   []Band
	}{
		{"even split", 16, 8, []Band{{0, 8}, {8, 16}}},
		{"short last band", 10, 4, []Band{{0, 4}, {4, 8}, {8, 10}}},
		{"single band", 3, 8, []Band{{0, 3}}},
		{"one row per band", 3, 1, []Band{{0, 1}, {1, 2}, {2, 3}}},
		{"empty", 0, 8, nil},
		{"negative height", -2, 8, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.height, tt.rows)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands(%d, %d) = %v, want %v", tt.height, tt.rows, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBands_DefaultHeight(t *testing.T) {
	got := Bands(480, 0)
	if len(got) != 480/BandHeight {
		t.Errorf("len = %d, want %d", len(got), 480/BandHeight)
	}
	for _, b := range got {
		if b.Rows() != BandHeight {
			t.Errorf("band %v has %d rows, want %d", b, b.Rows(), BandHeight)
		}
	}
}

func TestBands_CoverEveryRowOnce(t *testing.T) {
	const height = 479
	covered := make([]int, height)
	for _, b := range Bands(height, 7) {
		for y := b.Y0; y < b.Y1; y++ {
			covered[y]++
		}
	}
	for y, n := range covered {
		if n != 1 {
			t.Fatalf("row %d covered %d times", y, n)
		}
	}
}
