package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusinessName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"llc", "Alpi Electric LLC", true},
		{"solutions", "R Electrical Solutions", true},
		{"inc with period", "1st Electric Response Inc.", true},
		{"corp", "Lone Star Corp", true},
		{"co with period", "Miller Co.", true},
		{"service singular", "Tom's Lawn Service", true},
		{"company", "The Fence Company", true},
		{"enterprises", "Garcia Enterprises", true},
		{"contractor", "Dave the Contractor", true},
		{"hvac", "Northside HVAC", true},
		{"construction", "Apex Construction", true},
		{"ampersand sons", "Smith& Sons", true},
		{"brothers", "Martinez Brothers", true},
		{"pro suffix", "Gutter Pro", true},
		{"pros suffix", "The Drain Pros", true},
		{"group", "Summit Group", true},
		{"inspection", "Home Inspections of Texas", true},
		{"repair", "Quick Repair", true},
		{"installers", "Fence Installers", true},
		{"installation", "Solar Installation", true},
		{"surrounding whitespace", "  Alpi Electric LLC  ", true},

		{"person", "Robert Renfro", false},
		{"person two", "Mike Gonzales", false},
		{"person three", "David Guerra", false},
		{"co inside word", "Scott", false},
		{"co inside account", "account", false},
		{"pro not at end", "Pro Tips for Homeowners", false},
		{"pro inside word", "Prosper Jones", false},
		{"electrician is not electric", "Jane the Electrician", false},
		{"plumber is not plumbing", "Joe the Plumber", false},
		{"empty", "", false},
		{"whitespace", "   ", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsBusinessName(tt.in))
		})
	}
}

func TestIsBusinessName_AccentedWords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"co followed by accented letter", "Raúl Coímbra", false},
		{"co followed by circumflex", "Ana Coêlho", false},
		{"accented letter before co", "Ángel Écorp", false},
		{"ampersand after accented letter", "Peña& Sons", true},
		{"co suffix after accented name", "José Pérez Co.", true},
		{"trade after accented name", "Niño Electric", true},
		{"service with accented owner", "Muñoz Services", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsBusinessName(tt.in))
		})
	}
}

func TestBusinessSignal_FirstMatchWins(t *testing.T) {
	c := Default()

	s, ok := c.BusinessSignal("Alpi Electric LLC")
	assert.True(t, ok)
	assert.Equal(t, "llc", s.Name)

	s, ok = c.BusinessSignal("R Electrical Solutions")
	assert.True(t, ok)
	assert.Equal(t, "solutions", s.Name)

	s, ok = c.BusinessSignal("Robert Renfro")
	assert.False(t, ok)
	assert.Empty(t, s.Name)
}

func TestIsQualifiedProspect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		text     string
		industry string
		want     bool
	}{
		{"person listing", "Robert Renfro\nPlumber in Austin", "plumbing", false},
		{"business listing", "AlphaCo Plumbing LLC\nAustin TX", "plumbing", true},
		{"single line", "AlphaCo Plumbing LLC", "plumbing", true},
		{"business word only in context", "Robert Renfro\nRenfro Plumbing LLC", "plumbing", false},
		{"leading blank lines", "\n\nAlpi Electric LLC\nAustin", "electrical", true},
		{"crlf", "Alpi Electric LLC\r\nAustin", "electrical", true},
		{"empty", "", "plumbing", false},
		{"industry ignored", "AlphaCo Plumbing LLC\nAustin TX", "not_a_real_industry", true},
		{"industry mismatch ignored", "Summit Roofing\nDallas", "plumbing", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsQualifiedProspect(tt.text, tt.industry))
		})
	}
}

func TestCandidateName(t *testing.T) {
	assert.Equal(t, "AlphaCo Plumbing LLC", CandidateName("AlphaCo Plumbing LLC\nAustin TX"))
	assert.Equal(t, "Solo", CandidateName("  Solo  "))
	assert.Equal(t, "", CandidateName(""))
}

func TestOperations_Deterministic(t *testing.T) {
	inputs := []string{"Alpi Electric LLC", "Robert Renfro", "Scott", "", "Roof and Gutter Heating"}
	for _, in := range inputs {
		assert.Equal(t, DetectIndustry(in), DetectIndustry(in))
		assert.Equal(t, MatchesIndustry(in, "hvac"), MatchesIndustry(in, "hvac"))
		assert.Equal(t, IsBusinessName(in), IsBusinessName(in))
		assert.Equal(t, IsQualifiedProspect(in, "hvac"), IsQualifiedProspect(in, "hvac"))
	}
	assert.Equal(t, ListIndustries(), ListIndustries())
}
