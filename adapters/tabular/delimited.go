package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"

	"univar/domain/core"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readDelimited splits text into records. Row widths are checked later so
// that short rows can be padded.
func readDelimited(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, core.NewMalformedTableError("cannot parse delimited text", parseErr)
		}
		return nil, core.NewMalformedTableError("cannot read delimited text", err)
	}
	return records, nil
}
