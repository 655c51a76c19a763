package classify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIndustries_CatalogOrder(t *testing.T) {
	assert.Equal(t, []string{
		"plumbing", "hvac", "electrical", "remodeling",
		"landscaping", "power_washing", "roofing", "painting",
	}, ListIndustries())
}

func TestListIndustries_ReturnsCopy(t *testing.T) {
	names := ListIndustries()
	names[0] = "mutated"
	assert.Equal(t, "plumbing", ListIndustries()[0])
}

func TestDetectIndustry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plumb lower", "best plumber in town", "plumbing"},
		{"plumb upper", "ACE PLUMBING", "plumbing"},
		{"plumb mixed", "PlUmB Masters", "plumbing"},
		{"rooter", "Rapid Rooter of Dallas", "plumbing"},
		{"multi-word keyword", "Cool Air Conditioning Experts", "hvac"},
		{"furnace", "Furnace Doctor", "hvac"},
		{"electric", "Bright Electric", "electrical"},
		{"remodel", "Kitchen Remodeling Pros", "remodeling"},
		{"lawn", "Main Street Lawn Care", "landscaping"},
		{"tree service", "Tall Oak Tree Service", "landscaping"},
		{"pressure wash", "Pressure Washing Kings", "power_washing"},
		{"gutter", "Gutter Guys", "roofing"},
		{"paint", "Fresh Coat Painters", "painting"},
		{"no keyword falls back", "Robert Renfro", "electrical"},
		{"empty falls back", "", "electrical"},
		{"plumbing beats electrical", "Electric and Plumbing Co", "plumbing"},
		{"hvac beats roofing", "Roof and Gutter Heating", "hvac"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectIndustry(tt.text))
		})
	}
}

func TestMatchesIndustry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		text     string
		industry string
		want     bool
	}{
		{"keyword present", "Septic tank pumping", "plumbing", true},
		{"case insensitive", "SOFT WASH experts", "power_washing", true},
		{"other industry only", "Septic tank pumping", "roofing", false},
		{"second industry in text", "Electric and Plumbing Co", "electrical", true},
		{"unknown industry", "plumbing", "not_a_real_industry", false},
		{"unknown industry empty text", "", "not_a_real_industry", false},
		{"empty industry", "plumbing", "", false},
		{"empty text", "", "plumbing", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesIndustry(tt.text, tt.industry))
		})
	}
}

func TestIndustryFromFilename(t *testing.T) {
	c := Default()

	ind, ok := c.IndustryFromFilename("leads_HVAC_austin.csv")
	assert.True(t, ok)
	assert.Equal(t, "hvac", ind)

	ind, ok = c.IndustryFromFilename("power_washing-2024-05.xlsx")
	assert.True(t, ok)
	assert.Equal(t, "power_washing", ind)

	_, ok = c.IndustryFromFilename("scrape_results.csv")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	c := Default()
	assert.Equal(t, "HVAC", c.Label("hvac"))
	assert.Equal(t, "Power Washing", c.Label("power_washing"))
	assert.Equal(t, "pest_control", c.Label("pest_control"))
}

func TestIndustries_ReturnsCopy(t *testing.T) {
	c := Default()
	cat := c.Industries()
	cat[0].Keywords[0] = "zzz"
	cat[0].Name = "zzz"

	assert.Equal(t, "plumbing", c.ListIndustries()[0])
	assert.Equal(t, "plumbing", c.DetectIndustry("plumb"))
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		catalog Catalog
		signals []Signal
	}{
		{"empty catalog", Catalog{}, DefaultSignals()},
		{"missing name", Catalog{{Keywords: []string{"x"}}}, DefaultSignals()},
		{"duplicate name", Catalog{{Name: "a", Keywords: []string{"x"}}, {Name: "a", Keywords: []string{"y"}}}, DefaultSignals()},
		{"no keywords", Catalog{{Name: "a"}}, DefaultSignals()},
		{"blank keyword", Catalog{{Name: "a", Keywords: []string{" "}}}, DefaultSignals()},
		{"no signals", DefaultCatalog(), nil},
		{"bad signal", DefaultCatalog(), []Signal{{Name: "bad", Expr: `(`}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.catalog, tt.signals)
			assert.Error(t, err)
		})
	}
}

func TestNew_LowercasesKeywords(t *testing.T) {
	c, err := New(Catalog{{Name: "pools", Keywords: []string{"POOL"}}}, DefaultSignals())
	require.NoError(t, err)

	assert.Equal(t, "pools", c.DetectIndustry("Blue Pool Care"))
	assert.True(t, c.MatchesIndustry("blue pool care", "pools"))
}

func TestNew_FallbackIsFixed(t *testing.T) {
	c, err := New(Catalog{{Name: "pools", Keywords: []string{"pool"}}}, DefaultSignals())
	require.NoError(t, err)

	assert.Equal(t, FallbackIndustry, c.DetectIndustry("Robert Renfro"))
}

func TestNew_SharedKeyword(t *testing.T) {
	c, err := New(Catalog{
		{Name: "first", Keywords: []string{"deck"}},
		{Name: "second", Keywords: []string{"fence", "deck"}},
	}, DefaultSignals())
	require.NoError(t, err)

	assert.Equal(t, "first", c.DetectIndustry("Deck Builders"))
	assert.True(t, c.MatchesIndustry("Deck Builders", "second"))
}

func TestDetectIndustry_Concurrent(t *testing.T) {
	c := Default()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "plumbing", c.DetectIndustry("Drain Masters"))
				assert.Equal(t, "roofing", c.DetectIndustry("Shingle Shop"))
				assert.False(t, c.MatchesIndustry("Shingle Shop", "hvac"))
			}
		}()
	}
	wg.Wait()
}
