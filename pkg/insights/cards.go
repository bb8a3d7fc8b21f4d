package insights

import (
	"github.com/shopspring/decimal"
	"github.com/yurifrl/extrato/pkg/models"
)

// CardCashbackRate is the flat cashback estimate applied to card spend.
var CardCashbackRate = decimal.RequireFromString("0.01")

// CardSummary is the spend on a single card.
type CardSummary struct {
	CardID     string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// SummarizeCards groups rows by card in first-seen order. Rows without a card
// are ignored.
func SummarizeCards(rows []models.Transaction) []CardSummary {
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if !r.HasCard() {
			continue
		}
		sum, seen := sums[r.CardID]
		if !seen {
			order = append(order, r.CardID)
		}
		sums[r.CardID] = sum.Add(r.Amount)
	}

	out := make([]CardSummary, 0, len(order))
	for _, card := range order {
		total := round2(sums[card].Abs())
		out = append(out, CardSummary{
			CardID:     card,
			TotalSpent: total.InexactFloat64(),
			Cashback:   round2(total.Mul(CardCashbackRate)).InexactFloat64(),
		})
	}
	return out
}
