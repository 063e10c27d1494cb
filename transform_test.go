package sketch

import (
	"math"
	"testing"
)

func TestParseTransformKind(t *testing.T) {
	tests := []struct {
		name   string
		want   TransformKind
		wantOK bool
	}{
		{"translate", TransformTranslate, true},
		{"scale", TransformScale, true},
		{"rotate", TransformRotate, true},
		{"skew", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run("name="+tt.name, func(t *testing.T) {
			got, ok := parseTransformKind(tt.name)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("parseTransformKind(%q) = %v, %v", tt.name, got, ok)
			}
		})
	}
}

func TestApplyReplacesAbsolutely(t *testing.T) {
	st := newTransformState()

	if _, ok := st.Apply(TransformTranslate, Point{}, 10, 20); !ok {
		t.Fatal("translate rejected")
	}
	if _, ok := st.Apply(TransformTranslate, Point{}, 3, 4); !ok {
		t.Fatal("translate rejected")
	}
	if st.Translate != Pt(3, 4) {
		t.Errorf("Translate = %+v, want {3 4} (absolute replace, not accumulate)", st.Translate)
	}

	if _, ok := st.Apply(TransformRotate, Point{}, 90); !ok {
		t.Fatal("rotate rejected")
	}
	if _, ok := st.Apply(TransformRotate, Point{}, 45); !ok {
		t.Fatal("rotate rejected")
	}
	if math.Abs(st.Rotate-math.Pi/4) > 1e-12 {
		t.Errorf("Rotate = %v, want pi/4", st.Rotate)
	}
}

func TestApplyRejectsBadAmounts(t *testing.T) {
	tests := []struct {
		name    string
		kind    TransformKind
		amounts []float64
	}{
		{"translate missing arg", TransformTranslate, []float64{5}},
		{"translate no args", TransformTranslate, nil},
		{"translate NaN", TransformTranslate, []float64{math.NaN(), 2}},
		{"scale missing arg", TransformScale, []float64{2}},
		{"scale Inf", TransformScale, []float64{2, math.Inf(1)}},
		{"rotate no args", TransformRotate, nil},
		{"rotate NaN", TransformRotate, []float64{math.NaN()}},
		{"unknown kind", TransformKind(99), []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTransformState()
			before := st
			m, ok := st.Apply(tt.kind, Point{}, tt.amounts...)
			if ok {
				t.Fatal("Apply accepted invalid amounts")
			}
			if !m.IsIdentity() {
				t.Errorf("rejected Apply returned %+v, want identity", m)
			}
			if st != before {
				t.Errorf("rejected Apply mutated state: %+v", st)
			}
		})
	}
}

// Scaling then rotating must produce a different mapping than rotating then
// scaling, because translate/scale deltas compose over the rotated frame
// while rotate deltas compose over the scaled frame.
func TestCompositionOrderIsAsymmetric(t *testing.T) {
	pivot := Pt(50, 50)

	a := newTransformState()
	a.Apply(TransformScale, pivot, 2, 2)
	mA, ok := a.Apply(TransformRotate, pivot, 90)
	if !ok {
		t.Fatal("rotate rejected")
	}

	b := newTransformState()
	b.Apply(TransformRotate, pivot, 90)
	mB, ok := b.Apply(TransformScale, pivot, 2, 2)
	if !ok {
		t.Fatal("scale rejected")
	}

	if mA.NearlyEqual(mB, 1e-9) {
		t.Errorf("scale-then-rotate mapping equals rotate-then-scale: %+v", mA)
	}

	// Same end state either way; only the mapping differs.
	if a.Scale != b.Scale || a.Rotate != b.Rotate {
		t.Errorf("states diverged: %+v vs %+v", a, b)
	}
}

func TestRotateMappingFixesPivot(t *testing.T) {
	pivot := Pt(30, 40)
	st := newTransformState()
	m, ok := st.Apply(TransformRotate, pivot, 90)
	if !ok {
		t.Fatal("rotate rejected")
	}
	got := m.TransformPoint(pivot)
	if math.Abs(got.X-pivot.X) > 1e-9 || math.Abs(got.Y-pivot.Y) > 1e-9 {
		t.Errorf("pivot moved to %+v", got)
	}
}
