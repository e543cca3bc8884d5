package vers

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidOperators lists the constraint operators this package recognizes.
var ValidOperators = []string{"=", "!=", "<", "<=", ">", ">="}

var operatorRegex = regexp.MustCompile(`^(!=|>=|<=|[<>=])`)

// Constraint represents a single version constraint, e.g. ">=1.2.3".
type Constraint struct {
	Operator string
	Version  string
}

// ParseConstraint parses a constraint string into a Constraint. A bare
// version with no operator is treated as an exact-match constraint.
func ParseConstraint(s string) (*Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty constraint")
	}

	if matches := operatorRegex.FindStringSubmatch(s); matches != nil {
		operator := matches[1]
		version := strings.TrimSpace(s[len(operator):])
		if version == "" {
			return nil, fmt.Errorf("invalid constraint format: %s", s)
		}
		return &Constraint{Operator: operator, Version: version}, nil
	}

	return &Constraint{Operator: "=", Version: s}, nil
}

// intervalBuilders maps each operator that has an interval representation
// to the Interval constructor it maps onto. "!=" has no entry: a Range
// handles exclusion as a separate list rather than as an interval, so
// ToInterval below checks IsExclusion before consulting this table.
var intervalBuilders = map[string]func(version string) Interval{
	"=":  ExactInterval,
	">":  func(v string) Interval { return GreaterThanInterval(v, false) },
	">=": func(v string) Interval { return GreaterThanInterval(v, true) },
	"<":  func(v string) Interval { return LessThanInterval(v, false) },
	"<=": func(v string) Interval { return LessThanInterval(v, true) },
}

// ToInterval converts this constraint to an Interval.
// Returns false for exclusion constraints (!=), which a Range handles
// as a separate exclusion list rather than as an interval.
func (c *Constraint) ToInterval() (Interval, bool) {
	if c.IsExclusion() {
		return Interval{}, false
	}
	build, ok := intervalBuilders[c.Operator]
	if !ok {
		return Interval{}, false
	}
	return build(c.Version), true
}

// IsExclusion returns true if this is an exclusion constraint (!=).
func (c *Constraint) IsExclusion() bool {
	return c.Operator == "!="
}

// cmpPredicates maps each operator to the test it applies to the result
// of Compare(version, c.Version), so Satisfies reduces to one comparison
// plus one table lookup instead of re-deriving cmp per branch.
var cmpPredicates = map[string]func(cmp int) bool{
	"=":  func(cmp int) bool { return cmp == 0 },
	"!=": func(cmp int) bool { return cmp != 0 },
	">":  func(cmp int) bool { return cmp > 0 },
	">=": func(cmp int) bool { return cmp >= 0 },
	"<":  func(cmp int) bool { return cmp < 0 },
	"<=": func(cmp int) bool { return cmp <= 0 },
}

// Satisfies checks if a version satisfies this constraint.
func (c *Constraint) Satisfies(version string) bool {
	test, ok := cmpPredicates[c.Operator]
	if !ok {
		return false
	}
	return test(Compare(version, c.Version))
}

// String returns the constraint as a string.
func (c *Constraint) String() string {
	return c.Operator + c.Version
}
