package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatesClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"base":"RUB","rates":{"RUB":1,"USD":0.011,"EUR":0.009}}`)
	}))
	defer srv.Close()

	got, err := NewRatesClient(srv.Client(), srv.URL).Rates(context.Background(), []string{"USD", "EUR"})

	require.NoError(t, err)
	assert.Equal(t, []Rate{
		{Currency: "USD", Rate: 90.91},
		{Currency: "EUR", Rate: 111.11},
	}, got)
}

func TestRatesClientMissingCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates":{"USD":0.011}}`)
	}))
	defer srv.Close()

	_, err := NewRatesClient(srv.Client(), srv.URL).Rates(context.Background(), []string{"USD", "GBP"})
	assert.ErrorContains(t, err, "GBP")
}

func TestRatesClientBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewRatesClient(srv.Client(), srv.URL).Rates(context.Background(), []string{"USD"})
	assert.ErrorContains(t, err, "429")
}

func TestStocksClient(t *testing.T) {
	prices := map[string]string{"AAPL": "150.1200", "AMZN": "3173.1800"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "GLOBAL_QUOTE", q.Get("function"))
		assert.Equal(t, "secret", q.Get("apikey"))
		fmt.Fprintf(w, `{"Global Quote":{"01. symbol":%q,"05. price":%q}}`, q.Get("symbol"), prices[q.Get("symbol")])
	}))
	defer srv.Close()

	got, err := NewStocksClient(srv.Client(), srv.URL, "secret").Prices(context.Background(), []string{"AAPL", "AMZN"})

	require.NoError(t, err)
	assert.Equal(t, []StockPrice{
		{Stock: "AAPL", Price: 150.12},
		{Stock: "AMZN", Price: 3173.18},
	}, got)
}

func TestStocksClientRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Note":"Thank you for using Alpha Vantage!"}`)
	}))
	defer srv.Close()

	_, err := NewStocksClient(srv.Client(), srv.URL, "").Prices(context.Background(), []string{"AAPL"})
	assert.ErrorContains(t, err, "no price")
}

func TestStocksClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewStocksClient(http.DefaultClient, url, "").Prices(context.Background(), []string{"AAPL"})
	assert.Error(t, err)
}
