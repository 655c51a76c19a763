// Package leadfile reads scraped lead lists from CSV or XLSX files and
// writes classification verdicts.
package leadfile

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/lead-scraper/internal/model"
)

// Read loads leads from path, choosing the parser by file extension.
func Read(path string) ([]model.Lead, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "leadfile: open csv")
	}
	defer f.Close() //nolint:errcheck

	return ReadCSV(f)
}

// ReadCSV decodes leads from CSV. The first row is the header.
func ReadCSV(r io.Reader) ([]model.Lead, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow ragged rows; decode pads them

	return decode(reader)
}

// ReadXLSX decodes leads from the first sheet of an XLSX workbook.
func ReadXLSX(path string) ([]model.Lead, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "leadfile: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("leadfile: xlsx has no sheets")
	}

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}

	return decode(&sliceReader{rows: rows})
}

func decode(rows csvutil.Reader) ([]model.Lead, error) {
	header, err := rows.Read()
	if err == io.EOF {
		return nil, eris.New("leadfile: missing header row")
	}
	if err != nil {
		return nil, eris.Wrap(err, "leadfile: read header")
	}

	header = normalizeHeader(header)
	if !slices.Contains(header, "name") && !slices.Contains(header, "text") {
		return nil, eris.New("leadfile: header needs a name or text column")
	}

	dec, err := csvutil.NewDecoder(&fixedWidth{r: rows, n: len(header)}, header...)
	if err != nil {
		return nil, eris.Wrap(err, "leadfile: init decoder")
	}

	var leads []model.Lead
	for {
		var l model.Lead
		err := dec.Decode(&l)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "leadfile: decode row")
		}
		if l.Listing() == "" {
			continue
		}
		leads = append(leads, l)
	}
	return leads, nil
}

// normalizeHeader lower-cases and trims column names and drops a UTF-8 BOM.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		out[i] = strings.ToLower(strings.TrimSpace(col))
		if out[i] == "" {
			// Unnamed columns would collide as duplicates.
			out[i] = "_col" + strconv.Itoa(i)
		}
	}
	return out
}

// fixedWidth pads or truncates every record to the header width.
type fixedWidth struct {
	r csvutil.Reader
	n int
}

func (f *fixedWidth) Read() ([]string, error) {
	rec, err := f.r.Read()
	if err != nil {
		return nil, err
	}
	switch {
	case len(rec) < f.n:
		rec = append(rec, make([]string, f.n-len(rec))...)
	case len(rec) > f.n:
		rec = rec[:f.n]
	}
	return rec, nil
}

type sliceReader struct {
	rows [][]string
	pos  int
}

func (s *sliceReader) Read() ([]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}
