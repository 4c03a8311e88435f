package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"venograph/annotate"
)

// SummarySheet is the sheet holding the exported rows.
const SummarySheet = "Sheet1"

// WriteSummaryExcel writes the projected summary as a single-sheet workbook
// with the same two columns, in the same order, as the table image.
func WriteSummaryExcel(rows []annotate.SummaryRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetCellValue(SummarySheet, "A1", "Location"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SummarySheet, "B1", "Pressure (mmHg)"); err != nil {
		return nil, err
	}

	for i, row := range rows {
		locationCell := fmt.Sprintf("A%d", i+2)
		valueCell := fmt.Sprintf("B%d", i+2)
		if err := f.SetCellValue(SummarySheet, locationCell, row.Location); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SummarySheet, valueCell, row.Value); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
