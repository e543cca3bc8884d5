// Package vers compares software version strings according to the rules
// of real-world version schemes: numeric dotted components, prerelease
// tags (alpha/beta/rc/pre*), postrelease tags (patch/pl/errata/post*),
// alphabetic suffixes glued to numbers, and mixed alphanumeric separators.
//
// The comparison is total, deterministic, allocation-free, and
// locale-independent (case folding is ASCII-only). It never fails: every
// byte string, including the empty string and strings made entirely of
// separators, produces a defined result.
//
// Quick start:
//
//	vers.Compare("1.0alpha1", "1.0") // -1, prerelease unglues below release
//	vers.Compare("1.0patch1", "1.0") // +1, postrelease sorts above release
//	vers.Compare("1.0", "1.0.0")     // 0, trailing zero is a no-op
//
//	// Ranges and constraints are built entirely on top of Compare:
//	r, _ := vers.ParseRange(">=1.2.3,<2.0.0")
//	r.Contains("1.5.0") // true
//
// See spec.md / SPEC_FULL.md for the full comparison rules.
package vers

// Version is this package's own version, following its own rules.
const Version = "0.1.0"

// Satisfies checks if version satisfies a range expression (see
// ParseRange for syntax).
func Satisfies(version, rangeExpr string) (bool, error) {
	r, err := ParseRange(rangeExpr)
	if err != nil {
		return false, err
	}
	return r.Contains(version), nil
}

// singleton wraps one interval as a Range of its own, for the handful of
// package-level shorthands below that each describe exactly one interval.
func singleton(i Interval) *Range {
	return NewRange([]Interval{i})
}

// Exact, GreaterThan, LessThan, Unbounded, and Empty are shorthands for the
// single-interval range each name describes; see the matching Interval
// constructor for the exact bound semantics.
func Exact(version string) *Range {
	return singleton(ExactInterval(version))
}

func GreaterThan(version string, inclusive bool) *Range {
	return singleton(GreaterThanInterval(version, inclusive))
}

func LessThan(version string, inclusive bool) *Range {
	return singleton(LessThanInterval(version, inclusive))
}

func Unbounded() *Range {
	return singleton(UnboundedInterval())
}

func Empty() *Range {
	return singleton(EmptyInterval())
}
