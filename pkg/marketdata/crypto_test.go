package marketdata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-finance-assistant/pkg/marketdata"

	"github.com/stretchr/testify/assert"
)

func TestCryptoTopListings(t *testing.T) {
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-CMC_PRO_API_KEY")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{
					"name": "Bitcoin",
					"symbol": "BTC",
					"cmc_rank": 1,
					"quote": {"USD": {"price": 60123.456, "percent_change_24h": -1.234, "market_cap": 1200000000000}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := marketdata.NewCryptoClient(server.URL, "test-key")

	listings, err := client.TopListings(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, "/v1/cryptocurrency/listings/latest", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Len(t, listings, 1)
	assert.Equal(t, "BTC", listings[0].Symbol)
	assert.Equal(t, 60123.46, listings[0].PriceUSD)
	assert.Equal(t, -1.23, listings[0].PercentChange24h)
}

func TestCryptoQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/cryptocurrency/quotes/latest", r.URL.Path)
		assert.Equal(t, "ETH", r.URL.Query().Get("symbol"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"ETH": {
					"name": "Ethereum",
					"symbol": "ETH",
					"cmc_rank": 2,
					"circulating_supply": 120000000,
					"quote": {"USD": {"price": 3000.5, "percent_change_24h": 2.1, "market_cap": 360000000000, "volume_24h": 15000000000}}
				}
			}
		}`))
	}))
	defer server.Close()

	client := marketdata.NewCryptoClient(server.URL, "test-key")

	// Lowercase input resolves against the uppercase response key.
	detail, err := client.Quote(context.Background(), "eth")

	assert.NoError(t, err)
	assert.Equal(t, "ETH", detail.Symbol)
	assert.Equal(t, 3000.5, detail.PriceUSD)
	assert.Equal(t, 2, detail.Rank)
}

func TestCryptoQuote_SymbolMissingFromResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	client := marketdata.NewCryptoClient(server.URL, "test-key")

	detail, err := client.Quote(context.Background(), "NOPE")

	assert.Nil(t, detail)
	assert.Error(t, err)
}

func TestCryptoClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := marketdata.NewCryptoClient(server.URL, "test-key")

	listings, err := client.TopListings(context.Background(), 10)

	assert.Nil(t, listings)
	assert.ErrorContains(t, err, "status 429")
}
