package parser

// Columns names the spreadsheet headers the loader reads. Every other column is
// kept verbatim in Transaction.Cells.
type Columns struct {
	Date        string `mapstructure:"date"`
	Amount      string `mapstructure:"amount"`
	Category    string `mapstructure:"category"`
	Description string `mapstructure:"description"`
	Card        string `mapstructure:"card"`
	Cashback    string `mapstructure:"cashback"`
}

// DefaultColumns matches the bank export the tool was written for.
func DefaultColumns() Columns {
	return Columns{
		Date:        "Дата операции",
		Amount:      "Сумма платежа",
		Category:    "Категория",
		Description: "Описание",
		Card:        "Номер карты",
		Cashback:    "Кэшбэк",
	}
}

func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c.Date == "" {
		c.Date = d.Date
	}
	if c.Amount == "" {
		c.Amount = d.Amount
	}
	if c.Category == "" {
		c.Category = d.Category
	}
	if c.Description == "" {
		c.Description = d.Description
	}
	if c.Card == "" {
		c.Card = d.Card
	}
	if c.Cashback == "" {
		c.Cashback = d.Cashback
	}
	return c
}
