package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/yurifrl/extrato/pkg/models"
	"github.com/yurifrl/extrato/pkg/result"
)

// TopLimit is how many operations the home page lists.
const TopLimit = 5

// TopTransaction is one row of the home page top list.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// TopTransactions picks the largest operations, by signed amount, made between
// the start of at's month and at. Equal amounts keep their table order.
func TopTransactions(rows []models.Transaction, at time.Time) result.Result[[]TopTransaction] {
	start := StartOfMonth(at)
	month := filterWindow(rows, start, at)
	if len(month) == 0 {
		return result.Empty[[]TopTransaction](fmt.Sprintf(
			"Нет данных о транзакциях с начала текущего месяца (%s)", start.Format(displayDate)))
	}

	sort.SliceStable(month, func(i, j int) bool {
		return month[i].Amount.GreaterThan(month[j].Amount)
	})
	if len(month) > TopLimit {
		month = month[:TopLimit]
	}

	out := make([]TopTransaction, 0, len(month))
	for _, r := range month {
		out = append(out, TopTransaction{
			Date:        r.Date.Format(displayDate),
			Amount:      round2(r.Amount).InexactFloat64(),
			Category:    r.Category,
			Description: r.Description,
		})
	}
	return result.Ok(out)
}
