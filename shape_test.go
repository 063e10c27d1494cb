package sketch

import (
	"math"
	"testing"
)

func TestNewRectCoercion(t *testing.T) {
	tests := []struct {
		name                     string
		top, left, width, height float64
		wantTop, wantLeft        float64
		wantWidth, wantHeight    float64
	}{
		{"plain", 10, 20, 30, 40, 10, 20, 30, 40},
		{"negative size clamps", 10, 20, -30, -40, 10, 20, 0, 0},
		{"NaN position coerces", math.NaN(), 20, 30, 40, 0, 20, 30, 40},
		{"Inf size coerces then clamps", 10, 20, math.Inf(1), 40, 10, 20, 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.top, tt.left, tt.width, tt.height)
			if r.Top != tt.wantTop || r.Left != tt.wantLeft ||
				r.Width != tt.wantWidth || r.Height != tt.wantHeight {
				t.Errorf("NewRect = %+v", r)
			}
		})
	}
}

func TestNewCircleCoercion(t *testing.T) {
	c := NewCircle(math.NaN(), 5, -3)
	if c.X != 0 || c.Y != 5 || c.Radius != 0 {
		t.Errorf("NewCircle = %+v, want {0 5 0}", c)
	}
}

func TestStrokeImmutability(t *testing.T) {
	s := NewStroke(Pt(1, 1))
	s2 := s.withPoint(Pt(2, 2))

	if s.Len() != 1 {
		t.Errorf("original stroke mutated, Len = %d", s.Len())
	}
	if s2.Len() != 2 || s2.At(1) != Pt(2, 2) {
		t.Errorf("extended stroke = %+v", s2)
	}

	s3, last := s2.withoutLast()
	if last != Pt(2, 2) || s3.Len() != 1 {
		t.Errorf("withoutLast = %+v, %+v", s3, last)
	}
	if s2.Len() != 2 {
		t.Errorf("withoutLast mutated receiver, Len = %d", s2.Len())
	}
}

func TestShapeCenters(t *testing.T) {
	canvas := NewImageCanvas(100, 100)

	tests := []struct {
		name  string
		shape Shape
		want  Point
	}{
		{"rect", NewRect(10, 20, 40, 60), Pt(40, 40)},
		{"circle", NewCircle(30, 50, 10), Pt(30, 50)},
		{"line", NewLine(Pt(0, 0), Pt(10, 20)), Pt(5, 10)},
		{"stroke bbox midpoint", NewStroke(Pt(0, 0), Pt(4, 0), Pt(2, 8)), Pt(2, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.center(canvas); got != tt.want {
				t.Errorf("center = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTextDrawRestoresFill(t *testing.T) {
	canvas := NewImageCanvas(100, 100)
	canvas.SetFillColor(Blue)

	txt := NewText("hi", Pt(10, 50), TextStyle{Font: DefaultFont(), Color: Red})
	txt.draw(canvas)

	if got := canvas.FillColor(); got != Blue {
		t.Errorf("fill color after text draw = %+v, want Blue", got)
	}
}

func TestTextCenterUsesMeasurement(t *testing.T) {
	canvas := NewImageCanvas(100, 100)
	txt := NewText("abc", Pt(10, 50), DefaultTextStyle())

	w, h := canvas.MeasureText("abc")
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureText = %v, %v", w, h)
	}
	want := Pt(10+w/2, 50+h/2)
	if got := txt.center(canvas); got != want {
		t.Errorf("center = %+v, want %+v", got, want)
	}
}
