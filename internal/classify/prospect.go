package classify

import "strings"

// BusinessSignal returns the first signal matching name after lower-casing
// and trimming it.
func (c *Classifier) BusinessSignal(name string) (Signal, bool) {
	n := strings.TrimSpace(lower(name))
	for _, s := range c.signals {
		if s.match(n) {
			return s.Signal, true
		}
	}
	return Signal{}, false
}

// IsBusinessName reports whether name carries any business-name signal.
func (c *Classifier) IsBusinessName(name string) bool {
	_, ok := c.BusinessSignal(name)
	return ok
}

// IsQualifiedProspect reports whether the first line of a listing reads as
// a business name.
//
// industry is accepted for callers that pass the target industry along
// but does not affect the result.
func (c *Classifier) IsQualifiedProspect(text, industry string) bool {
	return c.IsBusinessName(CandidateName(text))
}

// CandidateName returns the name part of a scraped listing: the first line
// of the trimmed text, or the whole text when it has a single line.
func CandidateName(text string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return name
}

// IsBusinessName checks name against the built-in signals.
func IsBusinessName(name string) bool { return std.IsBusinessName(name) }

// IsQualifiedProspect checks a listing against the built-in signals.
func IsQualifiedProspect(text, industry string) bool { return std.IsQualifiedProspect(text, industry) }
