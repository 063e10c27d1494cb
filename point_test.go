package sketch

import (
	"math"
	"testing"
)

func TestPtCoercesNonFinite(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Point
	}{
		{"finite", 3, 4, Point{X: 3, Y: 4}},
		{"NaN x", math.NaN(), 4, Point{X: 0, Y: 4}},
		{"Inf y", 3, math.Inf(1), Point{X: 3, Y: 0}},
		{"both bad", math.NaN(), math.Inf(-1), Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pt(tt.x, tt.y); got != tt.want {
				t.Errorf("Pt(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(4, 6)

	if got := p.Add(q); got != Pt(5, 8) {
		t.Errorf("Add = %+v, want {5 8}", got)
	}
	if got := q.Sub(p); got != Pt(3, 4) {
		t.Errorf("Sub = %+v, want {3 4}", got)
	}
	if got := p.Mul(3); got != Pt(3, 6) {
		t.Errorf("Mul = %+v, want {3 6}", got)
	}
	if got := q.Sub(p).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Dist(p, q); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := Offset(p, q); got != Pt(3, 4) {
		t.Errorf("Offset = %+v, want {3 4}", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %+v, want %+v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %+v, want %+v", got, q)
	}
	if got := p.Lerp(q, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp(0.5) = %+v, want {5 10}", got)
	}
}
