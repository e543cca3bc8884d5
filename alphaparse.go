package vers

// alphaClass classifies an alphabetic run by what it does to the ordering
// of the component it belongs to.
type alphaClass int

const (
	alphaNeutral alphaClass = iota
	alphaPrerelease
	alphaPostrelease
)

// parseAlpha advances cur past the longest prefix of ASCII letters in s
// starting at cur, classifies the run, and returns the new cursor, the
// run's first character folded to lowercase (or componentAbsent if the run
// is empty), and the classification.
//
// The recognized-word list is closed and matches libversion exactly:
// "alpha", "beta", "rc" (exact) and any run starting with "pre" classify as
// prerelease; any run starting with "post", exact "patch", exact "pl", and
// any run of length >= 6 starting with "er" (the "errata" rule — see the
// open question in spec.md §9) classify as postrelease. A single 'p'/'P'
// classifies as postrelease only when p-is-patch is requested for this side.
func parseAlpha(s []byte, cur int, pIsPatch bool) (int, component, alphaClass) {
	start := cur

	for cur < len(s) && isAlpha(s[cur]) {
		cur++
	}

	if cur == start {
		return cur, componentAbsent, alphaNeutral
	}

	run := s[start:cur]
	class := classifyAlpha(run, pIsPatch)

	first := s[start]
	if first >= 'A' && first <= 'Z' {
		first = first - 'A' + 'a'
	}

	return cur, component(first), class
}

func classifyAlpha(run []byte, pIsPatch bool) alphaClass {
	n := len(run)
	switch {
	case n == 5 && caseEqual(run, "alpha"):
		return alphaPrerelease
	case n == 4 && caseEqual(run, "beta"):
		return alphaPrerelease
	case n == 2 && caseEqual(run, "rc"):
		return alphaPrerelease
	case n >= 3 && caseEqual(run[:3], "pre"):
		return alphaPrerelease
	case n >= 4 && caseEqual(run[:4], "post"):
		return alphaPostrelease
	case n == 5 && caseEqual(run, "patch"):
		return alphaPostrelease
	case n == 2 && caseEqual(run, "pl"):
		return alphaPostrelease
	case n >= 6 && caseEqual(run[:2], "er"):
		// the "errata" test compares only the first two letters against
		// "errata", so any run of six or more letters beginning "er"
		// qualifies, not just the word itself.
		return alphaPostrelease
	case pIsPatch && n == 1 && (run[0] == 'p' || run[0] == 'P'):
		return alphaPostrelease
	default:
		return alphaNeutral
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// caseEqual reports whether a and b are equal under ASCII case folding.
// b is always an already-lowercase literal.
func caseEqual(a []byte, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		c := a[i]
		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		if c != b[i] {
			return false
		}
	}
	return true
}
