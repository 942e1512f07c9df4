package mathutil

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"positive exact", 40, 20, 2},
		{"positive remainder", 39, 20, 1},
		{"negative remainder", -1, 20, -1},
		{"negative exact", -40, 20, -2},
		{"negative just past", -41, 20, -3},
		{"zero", 0, 144000, 0},
		{"negative divisor", 7, -2, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloorDiv(tt.a, tt.b); got != tt.want {
				t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"positive", 159, 260, 159},
		{"wraps", 260, 260, 0},
		{"minus one", -1, 260, 259},
		{"large negative", -18981, 18980, 18979},
		{"negative divisor", 7, -2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloorMod(tt.a, tt.b); got != tt.want {
				t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloorDivModIdentity(t *testing.T) {
	for a := -1000; a <= 1000; a++ {
		for _, b := range []int{7, 9, 13, 20, 260, 365} {
			q, r := FloorDiv(a, b), FloorMod(a, b)
			if q*b+r != a {
				t.Fatalf("FloorDiv/FloorMod(%d, %d) = (%d, %d), q*b+r = %d", a, b, q, r, q*b+r)
			}
			if r < 0 || r >= b {
				t.Fatalf("FloorMod(%d, %d) = %d, out of [0, %d)", a, b, r, b)
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		a, n int
		want int
	}{
		{0, 9, 9},
		{9, 9, 9},
		{10, 9, 1},
		{-1, 9, 8},
		{14, 13, 1},
		{13, 13, 13},
		{7, 7, 7},
	}

	for _, tt := range tests {
		if got := Wrap(tt.a, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}
