package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestPointSegmentDistance(t *testing.T) {
	tests := []struct {
		name     string
		p, a, b  Vec2
		expected float64
	}{
		{
			name:     "perpendicular above middle",
			p:        Vec2{5, 3},
			a:        Vec2{0, 0},
			b:        Vec2{10, 0},
			expected: 3,
		},
		{
			name:     "on the segment",
			p:        Vec2{4, 0},
			a:        Vec2{0, 0},
			b:        Vec2{10, 0},
			expected: 0,
		},
		{
			name:     "beyond end clamps to endpoint",
			p:        Vec2{13, 4},
			a:        Vec2{0, 0},
			b:        Vec2{10, 0},
			expected: 5,
		},
		{
			name:     "before start clamps to endpoint",
			p:        Vec2{-3, -4},
			a:        Vec2{0, 0},
			b:        Vec2{10, 0},
			expected: 5,
		},
		{
			name:     "diagonal segment",
			p:        Vec2{0, 10},
			a:        Vec2{0, 0},
			b:        Vec2{10, 10},
			expected: math.Sqrt(50),
		},
		{
			name:     "degenerate segment is point distance",
			p:        Vec2{3, 4},
			a:        Vec2{0, 0},
			b:        Vec2{0, 0},
			expected: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PointSegmentDistance(tc.p, tc.a, tc.b)
			if math.Abs(got-tc.expected) > epsilon {
				t.Errorf("PointSegmentDistance() = %f, expected %f", got, tc.expected)
			}
			if math.IsNaN(got) {
				t.Error("PointSegmentDistance() returned NaN")
			}
			// Segment direction must not matter
			rev := PointSegmentDistance(tc.p, tc.b, tc.a)
			if math.Abs(rev-tc.expected) > epsilon {
				t.Errorf("PointSegmentDistance() (reversed) = %f, expected %f", rev, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
	if got := v.Add(Vec2{1, 1}); got != (Vec2{4, 5}) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := v.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale() = %v", got)
	}
	if Dist(Vec2{0, 0}, v) != 5 {
		t.Error("Dist((0,0), (3,4)) should be 5")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
