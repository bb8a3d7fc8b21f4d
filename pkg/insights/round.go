package insights

import "github.com/shopspring/decimal"

// Amounts are rounded half-to-even so 0.125 becomes 0.12, matching how the
// figures were always displayed.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

func round0(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(0)
}

const displayDate = "02.01.2006"
