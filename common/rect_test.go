package common

import "testing"

func TestRectContains(t *testing.T) {
	r := CenteredRect(100, 50, 40, 20)

	cases := []struct {
		name string
		x, y float32
		want bool
	}{
		{"center", 100, 50, true},
		{"top_left_edge", 80, 40, true},
		{"bottom_right_edge", 120, 60, true},
		{"left_of", 79, 50, false},
		{"below", 100, 61, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.x, c.y); got != c.want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := CenteredRect(100, 50, 40, 20).Center()
	if x != 100 || y != 50 {
		t.Fatalf("Center() = (%v, %v), want (100, 50)", x, y)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.25) != 0.25 {
		t.Fatalf("Clamp01 out of range")
	}
}
