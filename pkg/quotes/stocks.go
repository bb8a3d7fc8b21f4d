package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// StocksClient reads Alpha Vantage GLOBAL_QUOTE responses, one request per
// ticker.
type StocksClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewStocksClient(client *http.Client, baseURL, apiKey string) *StocksClient {
	return &StocksClient{client: client, baseURL: baseURL, apiKey: apiKey}
}

type globalQuoteResponse struct {
	Quote map[string]string `json:"Global Quote"`
}

// Prices fetches the symbols in order. Any failure fails the whole call.
func (c *StocksClient) Prices(ctx context.Context, symbols []string) ([]StockPrice, error) {
	out := make([]StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		var body globalQuoteResponse
		if err := getJSON(ctx, c.client, c.quoteURL(symbol), &body); err != nil {
			return nil, fmt.Errorf("stock price %s: %w", symbol, err)
		}
		raw, ok := body.Quote["05. price"]
		if !ok {
			return nil, fmt.Errorf("stock price %s: no price in response", symbol)
		}
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("stock price %s: %w", symbol, err)
		}
		out = append(out, StockPrice{Stock: symbol, Price: price})
	}
	return out, nil
}

func (c *StocksClient) quoteURL(symbol string) string {
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	return c.baseURL + "?" + q.Encode()
}
