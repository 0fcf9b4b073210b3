package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/zarobax/ams-order-form/internal/domain/quote"
)

var headers = []string{"Item", "Code", "UOM", "Price"}

var colWidths = []float64{40, 16, 10, 12}

// PriceList renders a customer's master quote as a spreadsheet, one row per
// stored item code in canonical order. Items with no recorded price get an
// empty cell, not a zero.
func PriceList(rec *quote.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Price List"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
		f.SetCellStyle(sheet, col+"1", col+"1", headerStyle)
		f.SetColWidth(sheet, col, col, colWidths[i])
	}

	row := 2
	for _, code := range rec.SortedCodes() {
		line := rec.Items[code]
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Code)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.UOM)
		if line.Price.Set {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.Price.Value)
		}
		row++
	}

	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), fmt.Sprintf("Pricing stored for %s", rec.DisplayName))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row+1), fmt.Sprintf("A%d", row+1), summaryStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
