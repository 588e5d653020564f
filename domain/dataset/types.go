package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"univar/domain/core"
)

// ColumnKind classifies how a column is summarized
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Dataset is an uploaded table held in memory for one browser session.
// Columns keep the order of the header row.
type Dataset struct {
	ID       core.ID   `json:"id"`
	Name     string    `json:"name"`
	Columns  []Column  `json:"columns"`
	RowCount int       `json:"row_count"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Column holds the raw cell text of one column plus a per-row missing mask.
type Column struct {
	Name    string     `json:"name"`
	Kind    ColumnKind `json:"kind"`
	Raw     []string   `json:"-"`
	Missing []bool     `json:"-"`
}

// NewDataset creates a dataset with a fresh ID
func NewDataset(name string, columns []Column) *Dataset {
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0].Raw)
	}
	return &Dataset{
		ID:       core.NewID(),
		Name:     name,
		Columns:  columns,
		RowCount: rows,
		LoadedAt: time.Now(),
	}
}

// Column returns the column with the given name
func (d *Dataset) Column(name string) (*Column, error) {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i], nil
		}
	}
	return nil, core.NewColumnNotFoundError(name)
}

// ColumnNames returns column names in header order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// IsNumeric reports whether the column is summarized numerically
func (c *Column) IsNumeric() bool {
	return c.Kind == KindNumeric
}

// Len returns the number of rows including missing cells
func (c *Column) Len() int {
	return len(c.Raw)
}

// MissingCount returns how many cells are missing. For a numeric column it
// also counts cells Numbers skips, so Len equals len(Numbers()) plus this.
func (c *Column) MissingCount() int {
	n := 0
	for i := range c.Raw {
		if c.isMissing(i) {
			n++
			continue
		}
		if !c.IsNumeric() {
			continue
		}
		if _, ok := c.number(i); !ok {
			n++
		}
	}
	return n
}

func (c *Column) isMissing(i int) bool {
	return i < len(c.Missing) && c.Missing[i]
}

// Values returns the non-missing cells in row order
func (c *Column) Values() []string {
	values := make([]string, 0, len(c.Raw))
	for i, v := range c.Raw {
		if c.isMissing(i) {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Numbers returns the non-missing cells parsed as float64, in row order.
// Cells that do not parse, and NaN or infinite values, are skipped.
func (c *Column) Numbers() []float64 {
	numbers := make([]float64, 0, len(c.Raw))
	for i := range c.Raw {
		if c.isMissing(i) {
			continue
		}
		if f, ok := c.number(i); ok {
			numbers = append(numbers, f)
		}
	}
	return numbers
}

func (c *Column) number(i int) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Raw[i]), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
