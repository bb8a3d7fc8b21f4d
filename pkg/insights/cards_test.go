package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yurifrl/extrato/pkg/models"
)

func TestSummarizeCards(t *testing.T) {
	got := SummarizeCards(januaryRows())

	assert.Equal(t, []CardSummary{
		{CardID: "1234", TotalSpent: 1500, Cashback: 15},
		{CardID: "5678", TotalSpent: 4000, Cashback: 40},
	}, got)
}

func TestSummarizeCardsFirstSeenOrderAndMissingCard(t *testing.T) {
	rows := []models.Transaction{
		tx(day(2024, time.March, 1), "-10.005", "A", "a", "*9999"),
		tx(day(2024, time.March, 2), "-50", "B", "b", ""),
		tx(day(2024, time.March, 3), "-20", "C", "c", "*1111"),
		tx(day(2024, time.March, 4), "5", "D", "refund", "*9999"),
	}

	got := SummarizeCards(rows)

	assert.Equal(t, []CardSummary{
		{CardID: "*9999", TotalSpent: 5, Cashback: 0.05},
		{CardID: "*1111", TotalSpent: 20, Cashback: 0.2},
	}, got)
	assert.Len(t, rows, 4, "input rows must not be filtered in place")
	assert.Equal(t, "", rows[1].CardID)
}

func TestSummarizeCardsNeverNegative(t *testing.T) {
	rows := []models.Transaction{
		tx(day(2024, time.March, 1), "120.456", "Пополнения", "income", "*1"),
		tx(day(2024, time.March, 2), "-0.001", "A", "a", "*1"),
	}

	got := SummarizeCards(rows)

	assert.Equal(t, []CardSummary{{CardID: "*1", TotalSpent: 120.46, Cashback: 1.2}}, got)
}

func TestSummarizeCardsEmpty(t *testing.T) {
	got := SummarizeCards(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarizeCardsIdempotent(t *testing.T) {
	rows := januaryRows()
	assert.Equal(t, SummarizeCards(rows), SummarizeCards(rows))
}
