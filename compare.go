package vers

// Compare compares two version strings with no flags and returns -1, 0, or
// +1 for v1 < v2, v1 == v2, v1 > v2.
func Compare(v1, v2 string) int {
	return CompareAsymmetric(v1, v2, 0, 0)
}

// CompareSymmetric compares v1 and v2, applying flags identically to both
// sides. Legacy entry point kept for callers that don't need per-side
// flags.
func CompareSymmetric(v1, v2 string, flags Flags) int {
	return CompareAsymmetric(v1, v2, flags, flags)
}

// CompareCombined compares v1 and v2 using a single word that carries
// distinct left/right P_IS_PATCH and ANY_IS_PATCH bits.
func CompareCombined(v1, v2 string, flags CombinedFlags) int {
	left, right := flags.split()
	return CompareAsymmetric(v1, v2, left, right)
}

// CompareAsymmetric compares v1 and v2 with independent per-side flag
// words. This is the most general entry point; the other three all
// forward to it.
func CompareAsymmetric(v1, v2 string, v1Flags, v2Flags Flags) int {
	s1, s2 := []byte(v1), []byte(v2)
	cur1, cur2 := 0, 0

	var buf1, buf2 [2]unit
	len1, len2 := 0, 0

	extra1 := 0
	if v1Flags&(LowerBound|UpperBound) != 0 {
		extra1 = 1
	}
	extra2 := 0
	if v2Flags&(LowerBound|UpperBound) != 0 {
		extra2 = 1
	}

	for {
		if len1 == 0 {
			cur1, len1 = extractComponent(s1, cur1, v1Flags, buf1[:])
		}
		if len2 == 0 {
			cur2, len2 = extractComponent(s2, cur2, v2Flags, buf2[:])
		}

		shift := len1
		if len2 < shift {
			shift = len2
		}

		for i := 0; i < shift; i++ {
			if cmp := compareUnits(buf1[i], buf2[i]); cmp != 0 {
				return cmp
			}
		}

		if len1 != len2 {
			for i := 0; i < shift; i++ {
				buf1[i] = buf1[i+shift]
				buf2[i] = buf2[i+shift]
			}
		}

		len1 -= shift
		len2 -= shift

		exhausted1 := cur1 == len(s1) && len1 == 0
		exhausted2 := cur2 == len(s2) && len2 == 0

		if exhausted1 && extra1 > 0 {
			extra1--
			exhausted1 = false
		}
		if exhausted2 && extra2 > 0 {
			extra2--
			exhausted2 = false
		}

		if exhausted1 && exhausted2 {
			return 0
		}
	}
}
