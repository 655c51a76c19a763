// Package monitoring summarizes qualification runs.
package monitoring

import (
	"sort"
	"time"

	"github.com/sells-group/lead-scraper/internal/model"
)

// Snapshot holds the outcome counts of one qualification run.
type Snapshot struct {
	RunID string `json:"run_id"`

	Total         int     `json:"total"`
	Qualified     int     `json:"qualified"`
	Rejected      int     `json:"rejected"`
	IndustryMatch int     `json:"industry_match"`
	QualifiedRate float64 `json:"qualified_rate"`

	// ByIndustry counts leads per target industry.
	ByIndustry map[string]int `json:"by_industry"`
	// BySignal counts qualified leads per business-name signal.
	BySignal map[string]int `json:"by_signal"`

	CollectedAt time.Time `json:"collected_at"`
}

// Tally accumulates verdicts into a Snapshot. It is not safe for
// concurrent use.
type Tally struct {
	snap Snapshot
}

// NewTally creates an empty tally for a run.
func NewTally(runID string) *Tally {
	return &Tally{snap: Snapshot{
		RunID:      runID,
		ByIndustry: make(map[string]int),
		BySignal:   make(map[string]int),
	}}
}

// Add records one verdict.
func (t *Tally) Add(v model.Verdict) {
	t.snap.Total++
	t.snap.ByIndustry[v.TargetIndustry]++
	if v.IndustryMatch {
		t.snap.IndustryMatch++
	}
	if v.Qualified {
		t.snap.Qualified++
		t.snap.BySignal[v.Signal]++
	} else {
		t.snap.Rejected++
	}
}

// Snapshot returns a copy of the current counts.
func (t *Tally) Snapshot() Snapshot {
	s := t.snap
	s.ByIndustry = copyCounts(t.snap.ByIndustry)
	s.BySignal = copyCounts(t.snap.BySignal)
	if s.Total > 0 {
		s.QualifiedRate = float64(s.Qualified) / float64(s.Total)
	}
	s.CollectedAt = time.Now().UTC()
	return s
}

// Count is one key of a count map.
type Count struct {
	Key   string
	Count int
}

// SortedCounts orders a count map by count descending, then key.
func SortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
