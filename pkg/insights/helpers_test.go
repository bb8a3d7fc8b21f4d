package insights

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yurifrl/extrato/pkg/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(date time.Time, amount string, category, description, card string) models.Transaction {
	return models.Transaction{
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: description,
		CardID:      card,
	}
}

func withCashback(t models.Transaction, cashback string) models.Transaction {
	cb := decimal.RequireFromString(cashback)
	t.Cashback = &cb
	return t
}

// januaryRows mirrors ten consecutive January 2024 purchases on two cards.
func januaryRows() []models.Transaction {
	categories := []string{"Супермаркеты", "Рестораны", "Супермаркеты", "Транспорт", "Супермаркеты", "Рестораны", "Транспорт", "Супермаркеты", "Рестораны", "Супермаркеты"}
	descriptions := []string{"Покупка 1", "Ужин", "Покупка 2", "Такси", "Покупка 3", "Обед", "Метро", "Покупка 4", "Завтрак", "Покупка 5"}
	amounts := []string{"-100", "-200", "-300", "-400", "-500", "-600", "-700", "-800", "-900", "-1000"}

	rows := make([]models.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		card := "1234"
		if i >= 5 {
			card = "5678"
		}
		rows = append(rows, tx(day(2024, time.January, i+1), amounts[i], categories[i], descriptions[i], card))
	}
	return rows
}
