// Package tabular reads uploaded CSV, TSV and Excel files into datasets.
package tabular

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"univar/domain/core"
	"univar/domain/dataset"
	"univar/internal"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Format is a supported upload format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// DefaultNaNValues are the cell texts read as missing.
var DefaultNaNValues = []string{"", "NA", "NaN", "nan", "null", "NULL", "N/A", "n/a", "<nil>"}

// FormatOf picks the format from the file extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", core.NewUnsupportedFormatError(filename)
	}
}

// Reader loads uploaded tables. Types are inferred per column: columns whose
// present cells are all integers or floats are numeric, everything else is
// categorical.
type Reader struct {
	nanValues []string
	logger    *internal.Logger
}

// NewReader creates a reader that treats DefaultNaNValues as missing
func NewReader(logger *internal.Logger) *Reader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Reader{
		nanValues: DefaultNaNValues,
		logger:    logger.WithComponent("Reader"),
	}
}

// WithNaNValues returns a copy of the reader using a different missing list
func (r *Reader) WithNaNValues(values []string) *Reader {
	cp := *r
	cp.nanValues = append([]string(nil), values...)
	return &cp
}

// Read parses src according to the extension of filename.
func (r *Reader) Read(ctx context.Context, filename string, src io.Reader) (*dataset.Dataset, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, core.ErrEmptyUpload
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records [][]string
	switch format {
	case FormatCSV:
		records, err = readDelimited(data, ',')
	case FormatTSV:
		records, err = readDelimited(data, '\t')
	case FormatXLSX:
		records, err = readWorkbook(data)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrEmptyUpload
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := r.build(filepath.Base(filename), records)
	if err != nil {
		return nil, err
	}
	r.logger.Info("%s loaded as %s in %.2fms (%d columns, %d rows)",
		ds.Name, format, float64(time.Since(start).Nanoseconds())/1e6, len(ds.Columns), ds.RowCount)
	return ds, nil
}

// build turns a header row plus data rows into typed columns.
func (r *Reader) build(name string, records [][]string) (*dataset.Dataset, error) {
	headers := normalizeHeaders(records[0])
	rows := records[1:]

	for i, row := range rows {
		if len(row) > len(headers) {
			return nil, core.NewMalformedTableError(
				fmt.Sprintf("expected %d fields in line %d, saw %d", len(headers), i+2, len(row)), nil)
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows[i] = row
	}

	if len(rows) == 0 {
		columns := make([]dataset.Column, len(headers))
		for i, h := range headers {
			columns[i] = dataset.Column{Name: h, Kind: dataset.KindCategorical, Raw: []string{}, Missing: []bool{}}
		}
		return dataset.NewDataset(name, columns), nil
	}

	df := dataframe.LoadRecords(
		append([][]string{headers}, rows...),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(r.nanValues),
	)
	if df.Err != nil {
		return nil, core.NewMalformedTableError("cannot build table", df.Err)
	}

	columns := make([]dataset.Column, len(headers))
	for i, h := range headers {
		s := df.Col(h)
		if s.Err != nil {
			return nil, core.NewMalformedTableError(fmt.Sprintf("column %q", h), s.Err)
		}
		raw := make([]string, len(rows))
		for j, row := range rows {
			raw[j] = row[i]
		}
		columns[i] = dataset.Column{
			Name:    h,
			Kind:    kindOf(s.Type()),
			Raw:     raw,
			Missing: s.IsNaN(),
		}
	}
	return dataset.NewDataset(name, columns), nil
}

func kindOf(t series.Type) dataset.ColumnKind {
	switch t {
	case series.Int, series.Float:
		return dataset.KindNumeric
	default:
		return dataset.KindCategorical
	}
}
