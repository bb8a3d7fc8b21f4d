// Package quotes fetches currency rates and stock prices for the home page.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Rate is the price of one unit of a currency in the base currency.
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is the last quote of a ticker.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

//go:generate mockgen -destination=mocks/mock_quotes.go -package=mocks -source=quotes.go RateProvider,StockProvider
type RateProvider interface {
	Rates(ctx context.Context, codes []string) ([]Rate, error)
}

type StockProvider interface {
	Prices(ctx context.Context, symbols []string) ([]StockPrice, error)
}

func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
