package insights

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurifrl/extrato/pkg/models"
)

func TestTopTransactions(t *testing.T) {
	got := TopTransactions(januaryRows(), day(2024, time.January, 15))

	require.True(t, got.IsOk())
	assert.Equal(t, []TopTransaction{
		{Date: "01.01.2024", Amount: -100, Category: "Супермаркеты", Description: "Покупка 1"},
		{Date: "02.01.2024", Amount: -200, Category: "Рестораны", Description: "Ужин"},
		{Date: "03.01.2024", Amount: -300, Category: "Супермаркеты", Description: "Покупка 2"},
		{Date: "04.01.2024", Amount: -400, Category: "Транспорт", Description: "Такси"},
		{Date: "05.01.2024", Amount: -500, Category: "Супермаркеты", Description: "Покупка 3"},
	}, got.Value)
}

func TestTopTransactionsRefundOutranksExpense(t *testing.T) {
	rows := []models.Transaction{
		tx(day(2024, time.February, 2), "-5000", "Авиабилеты", "flight", "*1"),
		tx(day(2024, time.February, 3), "3000", "Возврат", "refund", "*1"),
	}

	got := TopTransactions(rows, day(2024, time.February, 10))

	require.True(t, got.IsOk())
	require.Len(t, got.Value, 2)
	assert.Equal(t, 3000.0, got.Value[0].Amount)
	assert.Equal(t, -5000.0, got.Value[1].Amount)
}

func TestTopTransactionsTiesKeepTableOrder(t *testing.T) {
	var rows []models.Transaction
	for _, d := range []string{"first", "second", "third", "fourth", "fifth", "sixth"} {
		rows = append(rows, tx(day(2024, time.February, 1), "-10", "A", d, ""))
	}

	got := TopTransactions(rows, day(2024, time.February, 1))

	require.True(t, got.IsOk())
	var names []string
	for _, r := range got.Value {
		names = append(names, r.Description)
	}
	assert.Equal(t, []string{"first", "second", "third", "fourth", "fifth"}, names)
}

func TestTopTransactionsWindowBounds(t *testing.T) {
	at := time.Date(2024, time.February, 10, 15, 30, 0, 0, time.UTC)
	rows := []models.Transaction{
		tx(time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC), "1", "A", "previous month", ""),
		tx(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "-1", "A", "start", ""),
		tx(at, "-2", "A", "at", ""),
		tx(at.Add(time.Second), "2", "A", "after", ""),
	}

	got := TopTransactions(rows, at)

	require.True(t, got.IsOk())
	var names []string
	for _, r := range got.Value {
		names = append(names, r.Description)
	}
	assert.Equal(t, []string{"start", "at"}, names)
}

func TestTopTransactionsFewerThanLimit(t *testing.T) {
	rows := januaryRows()[:2]

	got := TopTransactions(rows, day(2024, time.January, 31))

	require.True(t, got.IsOk())
	assert.Len(t, got.Value, 2)
}

func TestTopTransactionsEmpty(t *testing.T) {
	got := TopTransactions(januaryRows(), time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC))

	assert.True(t, got.IsEmpty())
	assert.Equal(t, "Нет данных о транзакциях с начала текущего месяца (01.03.2024)", got.Message)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, `"Нет данных о транзакциях с начала текущего месяца (01.03.2024)"`, string(data))
}

func TestTopTransactionsRoundsAmount(t *testing.T) {
	rows := []models.Transaction{tx(day(2024, time.May, 2), "-1262.005", "A", "a", "")}

	got := TopTransactions(rows, day(2024, time.May, 3))

	require.True(t, got.IsOk())
	assert.Equal(t, -1262.0, got.Value[0].Amount)
}

func TestTopTransactionsIdempotent(t *testing.T) {
	rows := januaryRows()
	at := day(2024, time.January, 15)
	assert.Equal(t, TopTransactions(rows, at), TopTransactions(rows, at))
}
