package domain

import "strings"

// ReasonNotAppropriate is the reason attached to every denylist violation.
const ReasonNotAppropriate = "is not appropriate"

// DefaultDenylist is the set of terms rejected when no configuration overrides it.
var DefaultDenylist = []string{"politics", "terrorism", "murder"}

// Violation is one denylisted term found in submitted content.
type Violation struct {
	Term   string
	Reason string
}

// String renders the violation as "<term> <reason>".
func (v Violation) String() string {
	return v.Term + " " + v.Reason
}

// ContentValidator checks content against a fixed denylist.
// The term set is built once and never written afterwards, so a single
// validator can be shared by any number of goroutines.
type ContentValidator struct {
	terms map[string]struct{}
}

// NewContentValidator builds a validator for the given terms.
// Terms are matched exactly; no case folding is applied.
func NewContentValidator(terms []string) *ContentValidator {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if t == "" {
			continue
		}

		set[t] = struct{}{}
	}

	return &ContentValidator{terms: set}
}

// DefaultContentValidator returns a validator for DefaultDenylist.
func DefaultContentValidator() *ContentValidator {
	return NewContentValidator(DefaultDenylist)
}

// Validate splits content on whitespace and returns one violation per token
// that exactly matches a denylisted term, in input order. Repeated tokens
// produce repeated violations. Returns nil when nothing matches.
func (v *ContentValidator) Validate(content string) []Violation {
	var violations []Violation

	for _, token := range strings.Fields(content) {
		if _, denied := v.terms[token]; denied {
			violations = append(violations, Violation{Term: token, Reason: ReasonNotAppropriate})
		}
	}

	return violations
}

// Terms returns the number of denylisted terms.
func (v *ContentValidator) Terms() int {
	return len(v.terms)
}
