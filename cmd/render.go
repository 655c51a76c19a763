package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-scraper/internal/classify"
	"github.com/sells-group/lead-scraper/internal/leadfile"
	"github.com/sells-group/lead-scraper/internal/model"
	"github.com/sells-group/lead-scraper/internal/monitoring"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderIndustries(w io.Writer, catalog classify.Catalog, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(catalog); err != nil {
			return eris.Wrap(err, "industries: encode json")
		}
		return nil
	case "table", "":
		t := newTable(w)
		t.AppendHeader(table.Row{"Name", "Label", "Keywords"})
		for _, ind := range catalog {
			t.AppendRow(table.Row{ind.Name, ind.Label, strings.Join(ind.Keywords, ", ")})
		}
		t.Render()
		return nil
	default:
		return eris.Errorf("industries: unknown format %q", format)
	}
}

type nameCheck struct {
	Name     string `json:"name"`
	Business bool   `json:"business"`
	Signal   string `json:"signal,omitempty"`
}

func checkNames(c *classify.Classifier, names []string) []nameCheck {
	out := make([]nameCheck, len(names))
	for i, n := range names {
		out[i] = nameCheck{Name: n}
		if sig, ok := c.BusinessSignal(n); ok {
			out[i].Business = true
			out[i].Signal = sig.Name
		}
	}
	return out
}

func renderNameChecks(w io.Writer, checks []nameCheck) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Business", "Signal"})
	for _, c := range checks {
		sig := c.Signal
		if sig == "" {
			sig = "-"
		}
		t.AppendRow(table.Row{c.Name, c.Business, sig})
	}
	t.Render()
}

func renderVerdicts(w io.Writer, verdicts []model.Verdict, format string) error {
	switch format {
	case "csv", "":
		return leadfile.WriteCSV(w, verdicts)
	case "json":
		return leadfile.WriteJSON(w, verdicts)
	case "table":
		if len(verdicts) == 0 {
			_, _ = fmt.Fprintln(w, "(0 leads)")
			return nil
		}
		t := newTable(w)
		t.AppendHeader(table.Row{"Name", "Industry", "Match", "Signal", "Qualified"})
		for _, v := range verdicts {
			t.AppendRow(table.Row{
				truncate(classify.CandidateName(v.Listing()), 48),
				v.TargetIndustry,
				v.IndustryMatch,
				v.Signal,
				v.Qualified,
			})
		}
		t.Render()
		return nil
	default:
		return eris.Errorf("qualify: unknown format %q", format)
	}
}

func renderSummary(w io.Writer, s monitoring.Snapshot) {
	_, _ = fmt.Fprintf(w, "run %s: %d leads, %d qualified (%.1f%%), %d rejected, %d industry matches\n",
		s.RunID, s.Total, s.Qualified, s.QualifiedRate*100, s.Rejected, s.IndustryMatch)

	if len(s.ByIndustry) == 0 {
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Industry", "Leads"})
	for _, c := range monitoring.SortedCounts(s.ByIndustry) {
		t.AppendRow(table.Row{c.Key, c.Count})
	}
	t.Render()
}

// truncate shortens s to max display columns, ending in "...".
func truncate(s string, max int) string {
	return text.Snip(s, max, "...")
}
