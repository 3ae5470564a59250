package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 1}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := Dist(Vec2{}, a); got != 5 {
		t.Errorf("Dist = %v, expected 5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF below = %v", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF above = %v", got)
	}
}

func TestLerpAndPowCurve(t *testing.T) {
	if got := Lerp(2, 10, 0.5); got != 6 {
		t.Errorf("Lerp midpoint = %v, expected 6", got)
	}
	if got := Lerp(2, 10, 0); got != 2 {
		t.Errorf("Lerp start = %v, expected 2", got)
	}

	if got := PowCurve(0.5, 2); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("PowCurve(0.5, 2) = %v, expected 0.25", got)
	}
	if got := PowCurve(2, 3); got != 1 {
		t.Errorf("PowCurve should clamp input, got %v", got)
	}
	if got := PowCurve(0.3, 0); got != 0.3 {
		t.Errorf("PowCurve with zero exponent should be linear, got %v", got)
	}

	// Monotonic on [0,1]
	prev := -1.0
	for i := 0; i <= 10; i++ {
		v := PowCurve(float64(i)/10, 2.2)
		if v < prev {
			t.Fatalf("PowCurve not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestNearestColor(t *testing.T) {
	if got := Nearest(RGB{R: 250, G: 130, B: 5}); got != ColorOrange {
		t.Errorf("Nearest(orange) = %v, expected ColorOrange", got)
	}
	if got := Nearest(RGB{R: 0, G: 190, B: 120}); got != ColorGreen {
		t.Errorf("Nearest(green) = %v, expected ColorGreen", got)
	}
}
