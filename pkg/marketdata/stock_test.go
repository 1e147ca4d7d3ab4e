package marketdata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-finance-assistant/pkg/marketdata"

	"github.com/stretchr/testify/assert"
)

func TestStockTopListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stocks/top", r.URL.Path)
		assert.Equal(t, "VNINDEX", r.URL.Query().Get("symbol"))
		assert.Equal(t, "marketCap", r.URL.Query().Get("sort"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"ticker": "VCB", "price": 90000, "percentPriceChange": 0.5, "totalMatchVolume": 1200000, "marketCap": 500000, "industryName": "Banking"},
				{"ticker": "VNM", "price": 80000, "percentPriceChange": -0.3, "totalMatchVolume": 900000, "marketCap": 170000, "industryName": ""}
			]
		}`))
	}))
	defer server.Close()

	client := marketdata.NewStockClient(server.URL)

	listings, err := client.TopListings(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, listings, 2)
	assert.Equal(t, "VCB", listings[0].Ticker)
	assert.Equal(t, "Banking", listings[0].Industry)
	assert.Equal(t, "N/A", listings[1].Industry)
}

func TestStockDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/stocks/FPT/profile":
			w.Write([]byte(`{"companyName": "FPT Corporation", "industryName": "Technology", "marketCap": 180000, "pe": 20.1, "roe": 0.28, "eps": 5600}`))
		case "/stocks/FPT/quote":
			w.Write([]byte(`{"price": 115000, "percentPriceChange": 1.8}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := marketdata.NewStockClient(server.URL)

	detail, err := client.Detail(context.Background(), "fpt")

	assert.NoError(t, err)
	assert.Equal(t, "FPT", detail.Ticker)
	assert.Equal(t, "FPT Corporation", detail.CompanyName)
	assert.Equal(t, 115000.0, detail.Price)
	assert.Equal(t, 20.1, detail.PERatio)
}

func TestStockDetail_UnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := marketdata.NewStockClient(server.URL)

	detail, err := client.Detail(context.Background(), "NOPE")

	assert.Nil(t, detail)
	assert.ErrorContains(t, err, "symbol not found")
}
