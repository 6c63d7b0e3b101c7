package core

// ZeroInversionError reports an attempt to invert the zero element,
// which has no multiplicative inverse in any field.
type ZeroInversionError struct{}

func (e *ZeroInversionError) Error() string {
	return "cannot invert zero"
}

// DuplicateInterpolationPointError reports that two points passed to
// LagrangeInterpolation share the same x-coordinate, which makes the
// interpolating polynomial ill-defined.
type DuplicateInterpolationPointError struct {
	X *FieldElement
}

func (e *DuplicateInterpolationPointError) Error() string {
	return "duplicate x-coordinate " + e.X.String() + " in interpolation points"
}
