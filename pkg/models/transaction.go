package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row of the operations spreadsheet.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
	CardID      string
	// Cashback is nil when the operation is not eligible for cashback.
	Cashback *decimal.Decimal

	// Cells holds the original row keyed by column header.
	Cells map[string]string
	// Line is the 1-based spreadsheet row the transaction was read from.
	Line int
}

// HasCard reports whether the operation was paid with a card.
func (t Transaction) HasCard() bool {
	return t.CardID != ""
}

// CashbackValue returns the cashback and whether the row carries one.
func (t Transaction) CashbackValue() (decimal.Decimal, bool) {
	if t.Cashback == nil {
		return decimal.Zero, false
	}
	return *t.Cashback, true
}

// Cell returns the raw value of column name.
func (t Transaction) Cell(name string) (string, bool) {
	v, ok := t.Cells[name]
	return v, ok
}

func (t Transaction) clone() Transaction {
	c := t
	if t.Cashback != nil {
		cb := *t.Cashback
		c.Cashback = &cb
	}
	if t.Cells != nil {
		c.Cells = make(map[string]string, len(t.Cells))
		for k, v := range t.Cells {
			c.Cells[k] = v
		}
	}
	return c
}
