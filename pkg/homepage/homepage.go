// Package homepage assembles the main page view: greeting, card totals, the
// month's largest operations and market quotes.
package homepage

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/extrato/pkg/insights"
	"github.com/yurifrl/extrato/pkg/models"
	"github.com/yurifrl/extrato/pkg/quotes"
	"github.com/yurifrl/extrato/pkg/result"
)

// Page is the home page payload. Field order is the order consumers see.
type Page struct {
	Greeting        string                                    `json:"greeting"`
	Cards           []insights.CardSummary                    `json:"cards"`
	TopTransactions result.Result[[]insights.TopTransaction] `json:"top_transactions"`
	CurrencyRates   []quotes.Rate                             `json:"currency_rates"`
	StockPrices     []quotes.StockPrice                       `json:"stock_prices"`
}

type Assembler struct {
	logger     *log.Logger
	rates      quotes.RateProvider
	stocks     quotes.StockProvider
	currencies []string
	symbols    []string
}

func New(logger *log.Logger, rates quotes.RateProvider, stocks quotes.StockProvider, currencies, symbols []string) *Assembler {
	return &Assembler{
		logger:     logger,
		rates:      rates,
		stocks:     stocks,
		currencies: currencies,
		symbols:    symbols,
	}
}

// Build composes the page for the reference instant at. Card totals cover the
// whole table; the top list covers the month up to at. Quote failures leave
// their list empty.
func (a *Assembler) Build(ctx context.Context, table *models.Table, at time.Time) (res result.Result[Page]) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic: %v", rec)
			a.logger.Error("home page failed", "err", err)
			res = result.Fail[Page](err, "")
		}
	}()

	if table == nil {
		err := fmt.Errorf("no operations loaded")
		a.logger.Error("home page failed", "err", err)
		return result.Fail[Page](err, "")
	}

	rows := table.Rows()
	page := Page{
		Greeting:        insights.Greeting(at.Hour()),
		Cards:           insights.SummarizeCards(rows),
		TopTransactions: insights.TopTransactions(rows, at),
		CurrencyRates:   a.currencyRates(ctx),
		StockPrices:     a.stockPrices(ctx),
	}
	a.logger.Debug("home page built", "cards", len(page.Cards), "rates", len(page.CurrencyRates), "stocks", len(page.StockPrices))
	return result.Ok(page)
}

func (a *Assembler) currencyRates(ctx context.Context) []quotes.Rate {
	if len(a.currencies) == 0 || a.rates == nil {
		return []quotes.Rate{}
	}
	rates, err := a.rates.Rates(ctx, a.currencies)
	if err != nil {
		a.logger.Warn("failed to fetch currency rates", "currencies", a.currencies, "err", err)
		return []quotes.Rate{}
	}
	if rates == nil {
		return []quotes.Rate{}
	}
	return rates
}

func (a *Assembler) stockPrices(ctx context.Context) []quotes.StockPrice {
	if len(a.symbols) == 0 || a.stocks == nil {
		return []quotes.StockPrice{}
	}
	prices, err := a.stocks.Prices(ctx, a.symbols)
	if err != nil {
		a.logger.Warn("failed to fetch stock prices", "stocks", a.symbols, "err", err)
		return []quotes.StockPrice{}
	}
	if prices == nil {
		return []quotes.StockPrice{}
	}
	return prices
}
