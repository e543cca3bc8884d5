package vers

// isVersionChar reports whether c is an ASCII alphanumeric — the only bytes
// the extractor treats as part of a version component rather than a
// separator. Non-ASCII bytes and all punctuation are separators.
func isVersionChar(c byte) bool {
	return isDigit(c) || isAlpha(c)
}

// extractComponent skips leading separators, then emits one or two units
// encoding the next logical component of s starting at cur into buf
// (capacity >= 2), returning the new cursor and the number of units written.
//
// sideFlags controls both the end-of-string filler (LOWER_BOUND/UPPER_BOUND)
// and alpha classification (P_IS_PATCH, ANY_IS_PATCH) for this side only.
func extractComponent(s []byte, cur int, sideFlags Flags, buf []unit) (int, int) {
	for cur < len(s) && !isVersionChar(s[cur]) {
		cur++
	}

	if cur == len(s) {
		switch {
		case sideFlags&LowerBound != 0:
			buf[0] = lowerBoundFillerUnit()
		case sideFlags&UpperBound != 0:
			buf[0] = upperBoundFillerUnit()
		default:
			buf[0] = plainFillerUnit()
		}
		return cur, 1
	}

	runEnd := cur
	for runEnd < len(s) && isVersionChar(s[runEnd]) {
		runEnd++
	}

	var number, extraNumber component
	var alpha component
	var class alphaClass

	cur, number = parseNumber(s, cur)
	cur, alpha, class = parseAlpha(s, cur, sideFlags&PIsPatch != 0)
	cur, extraNumber = parseNumber(s, cur)

	// Defensive: well-formed runs are fully consumed by the three parsers
	// above, but skip anything left over in this alphanumeric run anyway.
	if cur < runEnd {
		cur = runEnd
	}

	if sideFlags&AnyIsPatch != 0 && alpha != componentAbsent {
		class = alphaPostrelease
	}

	switch {
	case number != componentAbsent && extraNumber != componentAbsent:
		// "1a1" -> [1  ].[ a1]; "1patch1" -> special case [1  ].[0p1]
		buf[0] = unit{number, componentAbsent, componentAbsent}
		buf[1] = unit{companionLeadValue(class), alpha, extraNumber}
		return cur, 2
	case number != componentAbsent && alpha != componentAbsent && class != alphaNeutral:
		// prerelease/postrelease alpha unglues from a preceding number:
		// "1alpha" -> [1  ].[ a  ], not [1a  ]
		buf[0] = unit{number, componentAbsent, componentAbsent}
		buf[1] = unit{companionLeadValue(class), alpha, componentAbsent}
		return cur, 2
	default:
		if number == componentAbsent && class == alphaPostrelease {
			number = 0
		}
		buf[0] = unit{number, alpha, extraNumber}
		return cur, 1
	}
}

// companionLeadValue is the `a` field of the companion unit produced when a
// number is split from a following alpha token: 0 for postrelease (so it
// sorts above the bare number), componentAbsent otherwise (so it sorts
// below it, including below the end-of-string filler).
func companionLeadValue(class alphaClass) component {
	if class == alphaPostrelease {
		return 0
	}
	return componentAbsent
}
