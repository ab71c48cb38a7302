// Package input turns CSV, TSV, JSON Lines and YAML streams into table rows.
package input

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lugassawan/colz/internal/columnize"
)

// ErrNoHeaders is returned when headers are neither supplied nor derivable
// from the first row.
var ErrNoHeaders = errors.New("no headers: pass --headers or start the input with a header")

// Format names a supported input encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatTSV, FormatJSONL, FormatYAML}
}

// ParseFormat validates a format name. "json" and "ndjson" mean JSON Lines,
// "yml" means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	case "jsonl", "json", "ndjson":
		return FormatJSONL, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("invalid format %q (want csv, tsv, jsonl or yaml)", s)
}

// FormatFromPath guesses the format from a file extension, defaulting to CSV.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return FormatCSV
}

// Reader yields rows one at a time. Next returns io.EOF after the last row.
type Reader interface {
	Headers() []string
	Next() (columnize.Row, error)
}

// Open returns a Reader for format over r. When headers is empty they are
// taken from the input: the first CSV/TSV record, or the keys of the first
// JSON/YAML mapping in order.
func Open(format Format, r io.Reader, headers []string) (Reader, error) {
	switch format {
	case FormatCSV:
		return NewCSV(r, ',', headers)
	case FormatTSV:
		return NewCSV(r, '\t', headers)
	case FormatJSONL:
		return openNodes(lineSource(r), headers)
	case FormatYAML:
		return openNodes(docSource(r), headers)
	}
	return nil, fmt.Errorf("invalid format %q", format)
}

func openNodes(src nodeSource, headers []string) (Reader, error) {
	r, err := newNodeReader(src, headers)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ReadAll drains r.
func ReadAll(r Reader) ([]columnize.Row, error) {
	var rows []columnize.Row
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}
