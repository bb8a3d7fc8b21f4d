package quotes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// RatesClient reads an exchangerate-api style endpoint whose "rates" give how
// much of each currency one unit of the base currency buys.
type RatesClient struct {
	client *http.Client
	url    string
}

func NewRatesClient(client *http.Client, url string) *RatesClient {
	return &RatesClient{client: client, url: url}
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rates returns, for every code, the base-currency price of one unit rounded
// to two decimals. A code missing from the response fails the whole call.
func (c *RatesClient) Rates(ctx context.Context, codes []string) ([]Rate, error) {
	var body ratesResponse
	if err := getJSON(ctx, c.client, c.url, &body); err != nil {
		return nil, fmt.Errorf("currency rates: %w", err)
	}

	out := make([]Rate, 0, len(codes))
	for _, code := range codes {
		raw, ok := body.Rates[code]
		if !ok {
			return nil, fmt.Errorf("currency rates: no rate for %s", code)
		}
		if raw == 0 {
			return nil, fmt.Errorf("currency rates: zero rate for %s", code)
		}
		inverted := decimal.NewFromInt(1).Div(decimal.NewFromFloat(raw)).RoundBank(2)
		out = append(out, Rate{Currency: code, Rate: inverted.InexactFloat64()})
	}
	return out, nil
}
