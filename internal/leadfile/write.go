package leadfile

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-scraper/internal/model"
)

// WriteCSV writes verdicts with a header row, even when there are none.
func WriteCSV(w io.Writer, verdicts []model.Verdict) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(verdicts) == 0 {
		if err := enc.EncodeHeader(model.Verdict{}); err != nil {
			return eris.Wrap(err, "leadfile: encode header")
		}
	} else if err := enc.Encode(verdicts); err != nil {
		return eris.Wrap(err, "leadfile: encode verdicts")
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "leadfile: flush csv")
	}
	return nil
}

// WriteJSON writes verdicts as an indented JSON array.
func WriteJSON(w io.Writer, verdicts []model.Verdict) error {
	if verdicts == nil {
		verdicts = []model.Verdict{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(verdicts); err != nil {
		return eris.Wrap(err, "leadfile: encode json")
	}
	return nil
}
