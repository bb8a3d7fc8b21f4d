package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yurifrl/extrato/pkg/models"
)

// SpendingWindowMonths is the look-back of the category report.
const SpendingWindowMonths = 3

// SpendingByCategory returns the operations of category made during the three
// calendar months up to at, oldest first. A zero at means now.
func SpendingByCategory(table *models.Table, category string, at time.Time) []ReportRow {
	if at.IsZero() {
		at = WallClock(time.Now())
	}
	start := MonthsBefore(at, SpendingWindowMonths)

	var matched []models.Transaction
	for _, r := range filterWindow(table.Rows(), start, at) {
		if r.Category == category {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	out := make([]ReportRow, 0, len(matched))
	for _, r := range matched {
		out = append(out, renderRow(table, r))
	}
	return out
}

func renderRow(table *models.Table, r models.Transaction) ReportRow {
	row := ReportRow{}
	for _, name := range table.Header() {
		if name == "" {
			continue
		}
		if name == table.DateColumn() {
			row = append(row, Field{Name: name, Value: r.Date.Format(displayDate)})
			continue
		}
		raw, ok := r.Cell(name)
		if !ok {
			continue
		}
		row = append(row, Field{Name: name, Value: cellValue(raw, table.IsNumeric(name))})
	}
	return row
}

// cellValue maps a raw cell to nil for blanks and NaN. Cells of numeric
// columns become a Number; everything else stays the trimmed text.
func cellValue(raw string, numeric bool) any {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}
	if !numeric {
		return raw
	}
	normalized := strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(raw)
	if d, err := decimal.NewFromString(normalized); err == nil {
		return Number(d.String())
	}
	return raw
}
