package vers

import "testing"

// Comparator benchmarks

func BenchmarkCompare_Simple(b *testing.B) {
	for b.Loop() {
		Compare("1.2.3", "1.2.4")
	}
}

func BenchmarkCompare_Prerelease(b *testing.B) {
	for b.Loop() {
		Compare("1.0.0alpha1", "1.0.0beta2")
	}
}

func BenchmarkCompare_Postrelease(b *testing.B) {
	for b.Loop() {
		Compare("1.0.0patch1", "1.0.0patch2")
	}
}

func BenchmarkCompareSymmetric_PIsPatch(b *testing.B) {
	for b.Loop() {
		CompareSymmetric("1.0p1", "1.0", PIsPatch)
	}
}

func BenchmarkCompareScheme_Rpm(b *testing.B) {
	for b.Loop() {
		CompareScheme("1.2-3p1", "1.2-3", "rpm")
	}
}

// Range parsing benchmarks

func BenchmarkParseRange_Simple(b *testing.B) {
	for b.Loop() {
		_, _ = ParseRange(">=1.2.3")
	}
}

func BenchmarkParseRange_Intersection(b *testing.B) {
	for b.Loop() {
		_, _ = ParseRange(">=1.0.0,<2.0.0")
	}
}

func BenchmarkParseRange_Union(b *testing.B) {
	for b.Loop() {
		_, _ = ParseRange(">=1.0.0,<2.0.0|=3.0.0")
	}
}

func BenchmarkParseRange_WithExclusions(b *testing.B) {
	for b.Loop() {
		_, _ = ParseRange(">=1.0.0,<2.0.0,!=1.5.0,!=1.6.0,!=1.7.0")
	}
}

// Contains benchmarks

func BenchmarkContains_Simple(b *testing.B) {
	r, _ := ParseRange(">=1.2.3,<2.0.0")
	b.ResetTimer()
	for b.Loop() {
		r.Contains("1.5.0")
	}
}

func BenchmarkContains_MultiInterval(b *testing.B) {
	r, _ := ParseRange(">=1.0.0,<2.0.0|>=2.0.0,<3.0.0|>=3.0.0,<4.0.0")
	b.ResetTimer()
	for b.Loop() {
		r.Contains("2.5.0")
	}
}

func BenchmarkContains_WithExclusions(b *testing.B) {
	r, _ := ParseRange(">=1.0.0,<2.0.0,!=1.5.0,!=1.6.0,!=1.7.0")
	b.ResetTimer()
	for b.Loop() {
		r.Contains("1.8.0")
	}
}

func BenchmarkContains_Prerelease(b *testing.B) {
	r, _ := ParseRange(">=1.0.0alpha1")
	b.ResetTimer()
	for b.Loop() {
		r.Contains("1.0.0beta2")
	}
}

func BenchmarkContains_Prefix(b *testing.B) {
	interval := PrefixInterval("1.0")
	b.ResetTimer()
	for b.Loop() {
		interval.Contains("1.0rc1")
	}
}

// Range operation benchmarks

func BenchmarkUnion_TwoRanges(b *testing.B) {
	r1, _ := ParseRange(">=1.0.0,<2.0.0")
	r2, _ := ParseRange(">=2.0.0,<3.0.0")
	b.ResetTimer()
	for b.Loop() {
		r1.Union(r2)
	}
}

func BenchmarkUnion_ManyRanges(b *testing.B) {
	ranges := make([]*Range, 10)
	for i := range ranges {
		ranges[i], _ = ParseRange(">=1.0.0,<2.0.0")
	}
	b.ResetTimer()
	for b.Loop() {
		result := ranges[0]
		for _, r := range ranges[1:] {
			result = result.Union(r)
		}
	}
}

func BenchmarkIntersect_TwoRanges(b *testing.B) {
	r1, _ := ParseRange(">=1.0.0")
	r2, _ := ParseRange("<2.0.0")
	b.ResetTimer()
	for b.Loop() {
		r1.Intersect(r2)
	}
}

func BenchmarkIntersect_ManyRanges(b *testing.B) {
	r1, _ := ParseRange(">=1.0.0")
	r2, _ := ParseRange("<3.0.0")
	r3, _ := ParseRange(">=1.5.0")
	r4, _ := ParseRange("<2.5.0")
	b.ResetTimer()
	for b.Loop() {
		r1.Intersect(r2).Intersect(r3).Intersect(r4)
	}
}

// Satisfies benchmarks (combines parsing and contains)

func BenchmarkSatisfies_Simple(b *testing.B) {
	for b.Loop() {
		_, _ = Satisfies("1.5.0", ">=1.0.0,<2.0.0")
	}
}

func BenchmarkSatisfies_Union(b *testing.B) {
	for b.Loop() {
		_, _ = Satisfies("2.5.0", ">=1.0.0,<2.0.0|>=2.0.0,<3.0.0")
	}
}
