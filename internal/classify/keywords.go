package classify

import (
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower applies full Unicode lower-case mapping. A Caser keeps state, so
// one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// keywordIndex finds every catalog keyword in a text in one pass.
type keywordIndex struct {
	keywords []string
	// owners[i] lists the catalog positions of industries that own keywords[i].
	owners   [][]int
	matchers sync.Pool
}

func newKeywordIndex(c Catalog) *keywordIndex {
	idx := &keywordIndex{}
	pos := make(map[string]int)
	for i, ind := range c {
		for _, kw := range ind.Keywords {
			k, ok := pos[kw]
			if !ok {
				k = len(idx.keywords)
				pos[kw] = k
				idx.keywords = append(idx.keywords, kw)
				idx.owners = append(idx.owners, nil)
			}
			idx.owners[k] = append(idx.owners[k], i)
		}
	}

	// Matcher.Match mutates the matcher, so each scan borrows its own.
	idx.matchers.New = func() any {
		return ahocorasick.NewStringMatcher(idx.keywords)
	}
	return idx
}

// industries returns the set of catalog positions with at least one keyword
// occurring in lowered.
func (idx *keywordIndex) industries(lowered string) map[int]bool {
	m := idx.matchers.Get().(*ahocorasick.Matcher)
	hits := m.Match([]byte(lowered))
	idx.matchers.Put(m)

	found := make(map[int]bool, len(hits))
	for _, h := range hits {
		if h < 0 || h >= len(idx.owners) {
			continue
		}
		for _, i := range idx.owners[h] {
			found[i] = true
		}
	}
	return found
}
