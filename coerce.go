package sketch

import "math"

// The engine never rejects a drawing operation over a bad numeric argument:
// every constructor and setter routes its inputs through the helpers below,
// which substitute a safe default instead of propagating NaN or Inf into the
// model. Keeping the policy in one file makes the no-crash guarantee
// auditable in one place.

// finiteOr returns v if it is a finite number, otherwise def.
func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// sizeOr returns v clamped to be a finite, non-negative size.
// Non-finite values coerce to def before clamping.
func sizeOr(v, def float64) float64 {
	v = finiteOr(v, def)
	if v < 0 {
		return 0
	}
	return v
}

// allFinite reports whether every value is a finite number.
func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
