package geom

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, 6) {
		t.Errorf("Add() = %v, expected (2, 6)", got)
	}
	if got := a.Sub(b); got != V(4, 2) {
		t.Errorf("Sub() = %v, expected (4, 2)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Div(2); got != V(1.5, 2) {
		t.Errorf("Div() = %v, expected (1.5, 2)", got)
	}

	// Operands must be untouched
	if a != V(3, 4) || b != V(-1, 2) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestVecMagSq(t *testing.T) {
	// Squared magnitude by contract - no square root
	if got := V(3, 4).MagSq(); got != 25 {
		t.Errorf("MagSq() = %v, expected 25", got)
	}
	if got := V(0, 0).MagSq(); got != 0 {
		t.Errorf("MagSq() of zero = %v, expected 0", got)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.MagSq()-1) > 1e-12 {
		t.Errorf("Normalize() magnitude² = %v, expected 1", n.MagSq())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}
}

func TestVecSlope(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		expected float64
		ok       bool
	}{
		{"diagonal", V(2, 4), 2, true},
		{"horizontal", V(5, 0), 0, true},
		{"negative", V(2, -1), -0.5, true},
		{"vertical is infinite", V(0, 3), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.v.Slope()
			if ok != tc.ok || got != tc.expected {
				t.Errorf("Slope() = (%v, %v), expected (%v, %v)", got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestVecCross(t *testing.T) {
	if got := V(1, 0).Cross(V(0, 1)); got != 1 {
		t.Errorf("Cross() = %v, expected 1", got)
	}
	if got := V(2, 3).Cross(V(4, 6)); got != 0 {
		t.Errorf("Cross() of parallel vectors = %v, expected 0", got)
	}
}

func TestNear(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected bool
	}{
		{"identical", 1.0, 1.0, true},
		{"adjacent floats near 100", 100.0, 100.0 + 100.0*Epsilon/2, true},
		{"both tiny", 1e-40, -1e-40, true},
		{"clearly apart", 1.0, 1.1, false},
		{"apart near zero", 0.001, 0.002, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Near(tc.a, tc.b); got != tc.expected {
				t.Errorf("Near(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}
