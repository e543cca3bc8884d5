package vers

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed schemes.yaml
var schemesYAML []byte

// SchemePreset is a named, data-driven default assignment of per-side flag
// bits for a package ecosystem. It selects which of the already-specified
// flag bits (spec.md §4.5) apply to that ecosystem's versions; it adds no
// comparison semantics of its own.
type SchemePreset struct {
	Name  string `yaml:"name"`
	Flags flagNames
}

type flagNames struct {
	PIsPatch   bool `yaml:"p_is_patch"`
	AnyIsPatch bool `yaml:"any_is_patch"`
}

// presetDoc mirrors the shape of schemes.yaml.
type presetDoc struct {
	Schemes map[string]flagNames `yaml:"schemes"`
}

var schemePresets = mustLoadSchemePresets(schemesYAML)

func mustLoadSchemePresets(data []byte) map[string]SchemePreset {
	var doc presetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("vers: embedded schemes.yaml is invalid: %v", err))
	}

	presets := make(map[string]SchemePreset, len(doc.Schemes))
	for name, flags := range doc.Schemes {
		presets[name] = SchemePreset{Name: name, Flags: flags}
	}
	return presets
}

// flagWord returns the per-side Flags word this scheme uses.
func (p SchemePreset) flagWord() Flags {
	var f Flags
	if p.Flags.PIsPatch {
		f |= PIsPatch
	}
	if p.Flags.AnyIsPatch {
		f |= AnyIsPatch
	}
	return f
}

// SchemeFlags looks up the per-side Flags word registered for a named
// package ecosystem (e.g. "rpm", "cpan"). It reports false for unknown
// scheme names, in which case the caller should fall back to 0 (no
// special flags).
func SchemeFlags(scheme string) (Flags, bool) {
	preset, ok := schemePresets[scheme]
	if !ok {
		return 0, false
	}
	return preset.flagWord(), true
}

// CompareScheme compares v1 and v2 using the flag preset registered for
// scheme, applied symmetrically to both sides. Unknown scheme names fall
// back to plain Compare.
func CompareScheme(v1, v2, scheme string) int {
	flags, ok := SchemeFlags(scheme)
	if !ok {
		return Compare(v1, v2)
	}
	return CompareSymmetric(v1, v2, flags)
}

// KnownSchemes returns the names of every registered scheme preset.
func KnownSchemes() []string {
	names := make([]string, 0, len(schemePresets))
	for name := range schemePresets {
		names = append(names, name)
	}
	return names
}
