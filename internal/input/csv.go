package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/lugassawan/colz/internal/columnize"
)

type csvReader struct {
	r       *csv.Reader
	headers []string
}

// NewCSV reads delimiter-separated records. Record length is not enforced
// here; the table rejects rows that do not match the headers.
func NewCSV(r io.Reader, comma rune, headers []string) (Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = comma == '\t'

	if len(headers) == 0 {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeaders
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		headers = rec
	}
	return &csvReader{r: cr, headers: headers}, nil
}

func (c *csvReader) Headers() []string {
	return c.headers
}

func (c *csvReader) Next() (columnize.Row, error) {
	rec, err := c.r.Read()
	if errors.Is(err, io.EOF) {
		return columnize.Row{}, io.EOF
	}
	if err != nil {
		return columnize.Row{}, fmt.Errorf("read record: %w", err)
	}
	return columnize.Strings(rec), nil
}
