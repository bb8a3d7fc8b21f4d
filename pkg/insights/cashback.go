package insights

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/yurifrl/extrato/pkg/models"
	"github.com/yurifrl/extrato/pkg/result"
)

const noCashbackMessage = "В данном месяце кэшбэка не было"

// CategoryTotal is the cashback accumulated in one category.
type CategoryTotal struct {
	Category string
	Cashback int64
}

// CategoryCashback lists categories by descending cashback. It encodes as a
// JSON object whose keys keep that order.
type CategoryCashback []CategoryTotal

func (c CategoryCashback) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalLiteral(t.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", t.Cashback)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map returns the totals keyed by category.
func (c CategoryCashback) Map() map[string]int64 {
	m := make(map[string]int64, len(c))
	for _, t := range c {
		m[t.Category] = t.Cashback
	}
	return m
}

// CashbackCategories sums the cashback earned per category in the given month.
// The running total is rounded to a whole number after every addition. Rows
// without cashback, or with a zero or negative one, are skipped. A row without
// an operation date is an error.
func CashbackCategories(logger *log.Logger, year int, month time.Month, rows []models.Transaction) (result.Result[CategoryCashback], error) {
	logger.Info("analyzing cashback categories", "month", int(month), "year", year)

	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if r.Date.IsZero() {
			err := fmt.Errorf("row %d: missing operation date", r.Line)
			logger.Error("error analyzing cashback categories", "err", err)
			return result.Result[CategoryCashback]{}, err
		}
		if r.Date.Year() != year || r.Date.Month() != month {
			continue
		}
		cashback, ok := r.CashbackValue()
		if !ok || !cashback.IsPositive() {
			continue
		}
		total, seen := totals[r.Category]
		if !seen {
			order = append(order, r.Category)
		}
		totals[r.Category] = round0(total.Add(cashback))
	}

	if len(order) == 0 {
		return result.Empty[CategoryCashback](noCashbackMessage), nil
	}

	out := make(CategoryCashback, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Cashback: totals[cat].IntPart()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cashback > out[j].Cashback
	})
	return result.Ok(out), nil
}
