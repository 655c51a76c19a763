package classify

import (
	"github.com/dlclark/regexp2"
	"github.com/rotisserie/eris"
)

// Signal is one lexical hint that a name denotes a business. Expr is a
// regular expression searched anywhere in the lower-cased, trimmed name.
// Word classes and \b are Unicode-aware, so "coí" is one word.
type Signal struct {
	Name string `json:"name"`
	Expr string `json:"expr"`
}

// DefaultSignals returns the built-in business-name signals in match order.
func DefaultSignals() []Signal {
	return []Signal{
		// Legal suffixes.
		{Name: "llc", Expr: `\bllc\b`},
		{Name: "inc", Expr: `\binc\.?\b`},
		{Name: "corp", Expr: `\bcorp\.?\b`},
		{Name: "co", Expr: `\bco\.?\b`},

		// Generic business nouns.
		{Name: "services", Expr: `\bservices?\b`},
		{Name: "company", Expr: `\bcompany\b`},
		{Name: "enterprises", Expr: `\benterprises?\b`},
		{Name: "solutions", Expr: `\bsolutions?\b`},
		{Name: "contractors", Expr: `\bcontractors?\b`},

		// Trades.
		{Name: "electrical", Expr: `\belectric(?:al)?\b`},
		{Name: "plumbing", Expr: `\bplumbing\b`},
		{Name: "hvac", Expr: `\bhvac\b`},
		{Name: "roofing", Expr: `\broofing\b`},
		{Name: "painting", Expr: `\bpainting\b`},
		{Name: "landscaping", Expr: `\blandscaping\b`},
		{Name: "construction", Expr: `\bconstruction\b`},

		// Shapes.
		{Name: "and_sons", Expr: `\b&\s*sons?\b`},
		{Name: "brothers", Expr: `\bbrothers\b`},
		{Name: "pro_suffix", Expr: `\bpros?\b$`},
		{Name: "group", Expr: `\bgroup\b`},
		{Name: "inspections", Expr: `\binspections?\b`},
		{Name: "repairs", Expr: `\brepairs?\b`},
		{Name: "installation", Expr: `\binstall(?:ation|ers?)?\b`},
	}
}

type compiledSignal struct {
	Signal
	re *regexp2.Regexp
}

func (s compiledSignal) match(name string) bool {
	ok, err := s.re.MatchString(name)
	return err == nil && ok
}

func compileSignals(signals []Signal) ([]compiledSignal, error) {
	if len(signals) == 0 {
		return nil, eris.New("classify: no business-name signals")
	}
	out := make([]compiledSignal, len(signals))
	for i, s := range signals {
		re, err := regexp2.Compile(s.Expr, regexp2.None)
		if err != nil {
			return nil, eris.Wrapf(err, "classify: compile signal %q", s.Name)
		}
		out[i] = compiledSignal{Signal: s, re: re}
	}
	return out, nil
}
