package sketch

import "math"

// TransformKind selects which component of a layer's transform state a
// drag gesture or direct call mutates.
type TransformKind int

const (
	// TransformTranslate replaces the translation offsets.
	TransformTranslate TransformKind = iota
	// TransformScale replaces the scale factors.
	TransformScale
	// TransformRotate replaces the rotation angle.
	TransformRotate
)

// String returns the lowercase name used by the public string API.
func (k TransformKind) String() string {
	switch k {
	case TransformTranslate:
		return "translate"
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	}
	return "unknown"
}

// parseTransformKind maps a public name to its kind.
func parseTransformKind(name string) (TransformKind, bool) {
	switch name {
	case "translate":
		return TransformTranslate, true
	case "scale":
		return TransformScale, true
	case "rotate":
		return TransformRotate, true
	}
	return 0, false
}

// TransformState accumulates the translate/scale/rotate amounts applied to
// a layer's entire shape list at replay time. Amounts are absolute: each
// Apply replaces the component rather than adding to it. Skew is reserved
// and currently never set.
//
// The state persists across redraws and is deliberately NOT reset by a
// layer Clear.
type TransformState struct {
	Translate Point
	Scale     Point
	Skew      Point
	Rotate    float64 // radians
}

// newTransformState returns the neutral transform.
func newTransformState() TransformState {
	return TransformState{Scale: Pt(1, 1)}
}

// Apply mutates one component of the state and returns the effective
// pixel mapping for the given pivot. Wrong arity, non-finite amounts, or
// an unknown kind leave the state untouched and report false.
//
// The composition order is asymmetric on purpose:
//
//   - TRANSLATE and SCALE deltas are expressed in the rotated frame, so
//     the mapping rotates about the pivot first (with the rotation already
//     stored) and applies translate+scale on top.
//   - ROTATE deltas are expressed in the scaled/translated frame, so the
//     mapping applies the stored translate+scale first and rotates about
//     the pivot (with the new angle) on top.
//
// Rotation amounts are given in degrees and stored in radians.
func (t *TransformState) Apply(kind TransformKind, pivot Point, amounts ...float64) (Matrix, bool) {
	switch kind {
	case TransformTranslate:
		if len(amounts) < 2 || !allFinite(amounts[0], amounts[1]) {
			return Identity(), false
		}
		t.Translate = Pt(amounts[0], amounts[1])
		return t.translateScaleMapping(pivot), true

	case TransformScale:
		if len(amounts) < 2 || !allFinite(amounts[0], amounts[1]) {
			return Identity(), false
		}
		t.Scale = Pt(amounts[0], amounts[1])
		return t.translateScaleMapping(pivot), true

	case TransformRotate:
		if len(amounts) < 1 || !allFinite(amounts[0]) {
			return Identity(), false
		}
		t.Rotate = amounts[0] * math.Pi / 180
		return t.rotateMapping(pivot), true
	}
	return Identity(), false
}

// translateScaleMapping composes rotate-about-pivot first, then
// translate+scale.
func (t *TransformState) translateScaleMapping(pivot Point) Matrix {
	m := Translate(t.Translate.X, t.Translate.Y).Multiply(Scale(t.Scale.X, t.Scale.Y))
	return m.Multiply(RotateAbout(t.Rotate, pivot))
}

// rotateMapping composes translate+scale first, then rotate-about-pivot.
func (t *TransformState) rotateMapping(pivot Point) Matrix {
	m := Translate(t.Translate.X, t.Translate.Y).Multiply(Scale(t.Scale.X, t.Scale.Y))
	return RotateAbout(t.Rotate, pivot).Multiply(m)
}
