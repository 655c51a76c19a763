// Package classify maps scraped business listings to a home-service
// industry and decides whether a listing's name reads like a business.
package classify

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// FallbackIndustry is returned by DetectIndustry when no keyword matches.
// It is a fixed policy value, not an "unknown" sentinel.
const FallbackIndustry = "electrical"

// Industry is one catalog entry. Keywords are lowercase substrings.
type Industry struct {
	Name     string   `yaml:"name" json:"name"`
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Catalog is an ordered list of industries. Order decides which industry
// wins when a listing matches keywords of several.
type Catalog []Industry

// DefaultCatalog returns the built-in home-service catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "plumbing", Label: "Plumbing", Keywords: []string{"plumb", "rooter", "drain", "sewer", "septic"}},
		{Name: "hvac", Label: "HVAC", Keywords: []string{"hvac", "heating", "cooling", "air condition", "furnace"}},
		{Name: "electrical", Label: "Electrical", Keywords: []string{"electric", "wiring", "panel", "circuit"}},
		{Name: "remodeling", Label: "Remodeling", Keywords: []string{"remodel", "renovation", "construction", "contractor"}},
		{Name: "landscaping", Label: "Landscaping", Keywords: []string{"landscap", "lawn", "tree service", "yard"}},
		{Name: "power_washing", Label: "Power Washing", Keywords: []string{"power wash", "pressure wash", "soft wash"}},
		{Name: "roofing", Label: "Roofing", Keywords: []string{"roof", "shingle", "gutter"}},
		{Name: "painting", Label: "Painting", Keywords: []string{"paint", "stain", "finish"}},
	}
}

// Names returns the industry keys in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, ind := range c {
		names[i] = ind.Name
	}
	return names
}

// clone deep-copies the catalog so callers cannot mutate a classifier's tables.
func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	for i, ind := range c {
		out[i] = Industry{
			Name:     ind.Name,
			Label:    ind.Label,
			Keywords: append([]string(nil), ind.Keywords...),
		}
	}
	return out
}

// validate checks names are present and unique and keywords are non-empty.
// Keywords are lower-cased in place.
func (c Catalog) validate() error {
	if len(c) == 0 {
		return eris.New("classify: catalog is empty")
	}
	seen := make(map[string]bool, len(c))
	for i := range c {
		ind := &c[i]
		ind.Name = strings.TrimSpace(ind.Name)
		if ind.Name == "" {
			return eris.Errorf("classify: industry %d has no name", i)
		}
		if seen[ind.Name] {
			return eris.Errorf("classify: duplicate industry %q", ind.Name)
		}
		seen[ind.Name] = true

		if len(ind.Keywords) == 0 {
			return eris.Errorf("classify: industry %q has no keywords", ind.Name)
		}
		for j, kw := range ind.Keywords {
			kw = lower(kw)
			if strings.TrimSpace(kw) == "" {
				return eris.Errorf("classify: industry %q has an empty keyword", ind.Name)
			}
			ind.Keywords[j] = kw
		}
	}
	return nil
}

type catalogFile struct {
	Industries Catalog `yaml:"industries"`
}

// ParseCatalog decodes a YAML catalog of the form
//
//	industries:
//	  - name: plumbing
//	    label: Plumbing
//	    keywords: [plumb, rooter]
func ParseCatalog(data []byte) (Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "classify: parse catalog")
	}
	if err := f.Industries.validate(); err != nil {
		return nil, err
	}
	return f.Industries, nil
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "classify: read catalog")
	}
	return ParseCatalog(data)
}
