package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// sheet is a spreadsheet read as raw cell text. When the format records cell
// types, text marks the cells stored as text; otherwise text is nil and column
// types are inferred from the values.
type sheet struct {
	rows [][]string
	text map[cellRef]bool
}

type cellRef struct{ row, col int }

func (s sheet) typed() bool {
	return s.text != nil
}

// readXLSX reads stored values, not their display form: dates arrive as Excel
// serials and numbers unformatted.
func readXLSX(data []byte) (sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return sheet{}, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return sheet{}, fmt.Errorf("workbook has no sheets")
	}
	name := sheets[0]
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return sheet{}, fmt.Errorf("error reading sheet %s: %w", name, err)
	}

	text := make(map[cellRef]bool)
	for i, row := range rows {
		for j, v := range row {
			if v == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return sheet{}, err
			}
			typ, err := f.GetCellType(name, axis)
			if err != nil {
				return sheet{}, fmt.Errorf("error reading cell %s: %w", axis, err)
			}
			switch typ {
			case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
				text[cellRef{i, j}] = true
			}
		}
	}
	return sheet{rows: rows, text: text}, nil
}

func readXLS(data []byte) (sheet, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return sheet{}, fmt.Errorf("error creating workbook: %w", err)
	}
	return sheet{rows: workbook.ReadAllCells(maxRows)}, nil
}

func readCSV(data []byte) (sheet, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectComma(data)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return sheet{}, err
	}
	return sheet{rows: rows}, nil
}

// detectComma picks ';' when the header line uses it, as bank exports often do.
func detectComma(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
