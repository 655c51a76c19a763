package classify

import (
	"strings"
)

// Classifier holds an immutable industry catalog and business-name signal
// set. All methods are total and safe for concurrent use.
type Classifier struct {
	catalog  Catalog
	byName   map[string]int
	keywords *keywordIndex
	signals  []compiledSignal
}

// New builds a Classifier. The catalog and signals are copied.
func New(catalog Catalog, signals []Signal) (*Classifier, error) {
	cat := catalog.clone()
	if err := cat.validate(); err != nil {
		return nil, err
	}
	compiled, err := compileSignals(signals)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(cat))
	for i, ind := range cat {
		byName[ind.Name] = i
	}

	return &Classifier{
		catalog:  cat,
		byName:   byName,
		keywords: newKeywordIndex(cat),
		signals:  compiled,
	}, nil
}

// MustNew is like New but panics on invalid tables. Use it only for
// tables fixed at compile time.
func MustNew(catalog Catalog, signals []Signal) *Classifier {
	c, err := New(catalog, signals)
	if err != nil {
		panic(err)
	}
	return c
}

var std = MustNew(DefaultCatalog(), DefaultSignals())

// Default returns the process-wide classifier built from the built-in tables.
func Default() *Classifier { return std }

// ListIndustries returns every industry key in catalog order.
func (c *Classifier) ListIndustries() []string {
	return c.catalog.Names()
}

// Industries returns a copy of the catalog.
func (c *Classifier) Industries() Catalog {
	return c.catalog.clone()
}

// Label returns the display label of an industry, or the key itself when
// the industry is unknown or has no label.
func (c *Classifier) Label(industry string) string {
	i, ok := c.byName[industry]
	if !ok || c.catalog[i].Label == "" {
		return industry
	}
	return c.catalog[i].Label
}

// DetectIndustry returns the first industry, in catalog order, with a
// keyword occurring in text. It falls back to FallbackIndustry.
func (c *Classifier) DetectIndustry(text string) string {
	found := c.keywords.industries(lower(text))
	for i := range c.catalog {
		if found[i] {
			return c.catalog[i].Name
		}
	}
	return FallbackIndustry
}

// MatchesIndustry reports whether text contains a keyword of industry.
// Unknown industries never match.
func (c *Classifier) MatchesIndustry(text, industry string) bool {
	i, ok := c.byName[industry]
	if !ok {
		return false
	}
	return c.keywords.industries(lower(text))[i]
}

// IndustryFromFilename returns the first industry key, in catalog order,
// contained in the lower-cased file name.
func (c *Classifier) IndustryFromFilename(filename string) (string, bool) {
	name := lower(filename)
	for _, ind := range c.catalog {
		if strings.Contains(name, ind.Name) {
			return ind.Name, true
		}
	}
	return "", false
}

// ListIndustries returns the built-in industry keys in catalog order.
func ListIndustries() []string { return std.ListIndustries() }

// DetectIndustry classifies text against the built-in catalog.
func DetectIndustry(text string) string { return std.DetectIndustry(text) }

// MatchesIndustry checks text against one built-in industry.
func MatchesIndustry(text, industry string) bool { return std.MatchesIndustry(text, industry) }
