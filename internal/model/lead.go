package model

import "strings"

// Lead is one scraped business listing.
type Lead struct {
	Name     string `csv:"name" json:"name"`
	Text     string `csv:"text" json:"text,omitempty"`
	Industry string `csv:"industry" json:"industry,omitempty"`
	URL      string `csv:"url" json:"url,omitempty"`
	Phone    string `csv:"phone" json:"phone,omitempty"`
	Location string `csv:"location" json:"location,omitempty"`
}

// Listing returns the text evaluated for a lead: name and free text joined
// by a newline, blank parts skipped, so the name is always the first line.
func (l Lead) Listing() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(l.Name); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(l.Text); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

// IndustrySource records where a verdict's industry came from.
type IndustrySource string

const (
	IndustryFromLead     IndustrySource = "lead"
	IndustryFromRun      IndustrySource = "run"
	IndustryFromDetected IndustrySource = "detected"
)

// Verdict is the classification outcome for one lead.
type Verdict struct {
	Lead
	// TargetIndustry is the industry the lead was evaluated against.
	TargetIndustry   string         `csv:"target_industry" json:"target_industry"`
	IndustrySource   IndustrySource `csv:"industry_source" json:"industry_source"`
	DetectedIndustry string         `csv:"detected_industry" json:"detected_industry"`
	IndustryMatch    bool           `csv:"industry_match" json:"industry_match"`
	Signal           string         `csv:"signal" json:"signal,omitempty"`
	Qualified        bool           `csv:"qualified" json:"qualified"`
}
