package vers

import "math"

// componentCompare orders two component scalars without arithmetic
// subtraction, since components range up to componentMax and a naive
// difference could overflow and wrap sign.
func componentCompare(x, y component) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

// component is the scalar type every unit field is made of. It must be wide
// enough to hold any realistic numeric version component plus the sentinel
// maximum, and is saturated rather than trapped on overflow.
type component int64

// componentMax is the saturation ceiling for numeric components and also the
// value used for every field of the upper-bound filler unit.
const componentMax component = math.MaxInt64

// Sentinels used outside of parsed numeric/alpha values. They only need to
// sort correctly relative to component values in [0, componentMax] and to
// each other: lowerBoundFiller < absent < zero < any positive number < componentMax.
const (
	componentLowerBoundFiller component = -2
	componentAbsent           component = -1
)

// unit is the atomic triple compared lexicographically to order two
// version strings one logical component at a time. There is no other
// structure to a unit; every semantic decision is made by the extractor
// that produces one, not by the unit itself.
type unit struct {
	a, b, c component
}

// compareUnits orders two units by strict lexicographic comparison of
// (a, b, c), returning -1, 0, or 1.
func compareUnits(u1, u2 unit) int {
	if cmp := componentCompare(u1.a, u2.a); cmp != 0 {
		return cmp
	}
	if cmp := componentCompare(u1.b, u2.b); cmp != 0 {
		return cmp
	}
	return componentCompare(u1.c, u2.c)
}

// lowerBoundFillerUnit is emitted at end-of-string for a side with the
// LOWER_BOUND flag set: it sorts below any real component.
func lowerBoundFillerUnit() unit {
	return unit{componentLowerBoundFiller, componentLowerBoundFiller, componentLowerBoundFiller}
}

// upperBoundFillerUnit is emitted at end-of-string for a side with the
// UPPER_BOUND flag set: it sorts above any real component.
func upperBoundFillerUnit() unit {
	return unit{componentMax, componentMax, componentMax}
}

// plainFillerUnit is emitted at end-of-string for a side with neither bound
// flag set: it sorts below any extant numeric component but above absent.
func plainFillerUnit() unit {
	return unit{0, componentAbsent, componentAbsent}
}
