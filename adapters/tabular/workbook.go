package tabular

import (
	"bytes"
	"fmt"
	"strings"

	"univar/domain/core"

	"github.com/xuri/excelize/v2"
)

// readWorkbook returns the rows of the first sheet. Blank rows are dropped
// and every row is widened to the widest one, since the sheet trims
// trailing empty cells.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, core.NewMalformedTableError("cannot open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptyUpload
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewMalformedTableError(fmt.Sprintf("cannot read sheet %q", sheets[0]), err)
	}

	records := make([][]string, 0, len(rows))
	width := 0
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if len(row) > width {
			width = len(row)
		}
		records = append(records, row)
	}
	for i, row := range records {
		for len(row) < width {
			row = append(row, "")
		}
		records[i] = row
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
