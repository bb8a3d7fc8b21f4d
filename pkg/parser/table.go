package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yurifrl/extrato/pkg/models"
)

// dateLayouts are tried in order; all of them are day-first.
var dateLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (p *Parser) buildTable(sh sheet) (*models.Table, error) {
	rows := sh.rows
	headerIdx := -1
	for i, row := range rows {
		if indexOf(row, p.columns.Date) >= 0 {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("column %q not found", p.columns.Date)
	}

	header := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		header[i] = strings.TrimSpace(h)
	}
	if indexOf(header, p.columns.Amount) < 0 {
		return nil, fmt.Errorf("column %q not found", p.columns.Amount)
	}

	numeric := make([]bool, len(header))
	seen := make([]bool, len(header))
	for j := range numeric {
		numeric[j] = true
	}

	var transactions []models.Transaction
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		cells := make(map[string]string, len(header))
		for j, name := range header {
			if name == "" {
				continue
			}
			v := ""
			if j < len(row) {
				v = strings.TrimSpace(row[j])
			}
			cells[name] = v
			if !isMissing(v) {
				seen[j] = true
				if sh.typed() {
					numeric[j] = numeric[j] && !sh.text[cellRef{i, j}]
				} else {
					numeric[j] = numeric[j] && isNumber(v)
				}
			}
		}

		tx, err := p.buildTransaction(cells)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		tx.Line = i + 1
		transactions = append(transactions, tx)
	}

	schema := models.Schema{DateColumn: p.columns.Date}
	for j, name := range header {
		if name == "" || name == p.columns.Date {
			continue
		}
		if name == p.columns.Amount || name == p.columns.Cashback || (seen[j] && numeric[j]) {
			schema.Numeric = append(schema.Numeric, name)
		}
	}
	return models.NewTable(header, schema, transactions), nil
}

func (p *Parser) buildTransaction(cells map[string]string) (models.Transaction, error) {
	date, err := ParseDate(cells[p.columns.Date])
	if err != nil {
		return models.Transaction{}, err
	}

	amount, err := ParseAmount(cells[p.columns.Amount])
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}

	tx := models.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    cells[p.columns.Category],
		Description: cells[p.columns.Description],
		CardID:      cells[p.columns.Card],
		Cells:       cells,
	}

	if raw := cells[p.columns.Cashback]; !isMissing(raw) {
		cashback, err := ParseAmount(raw)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("invalid cashback: %w", err)
		}
		tx.Cashback = &cashback
	}

	return tx, nil
}

// ParseDate parses an operation date, day first. Excel serial numbers are
// accepted as well.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Round(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseAmount accepts both "1234.5" and "1 234,50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(s)
	return decimal.NewFromString(s)
}

// isNumber reports whether an untyped cell reads as a plain number. Leading
// zeros mark codes rather than quantities.
func isNumber(s string) bool {
	n := strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(s)
	if _, err := decimal.NewFromString(n); err != nil {
		return false
	}
	digits := strings.TrimLeft(n, "+-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] != '.' {
		return false
	}
	for i, c := range n {
		switch {
		case c >= '0' && c <= '9', c == '.':
		case (c == '-' || c == '+') && i == 0:
		default:
			return false
		}
	}
	return true
}

func isMissing(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func indexOf(row []string, name string) int {
	for i, c := range row {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}
