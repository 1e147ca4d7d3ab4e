package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StockClient talks to a Vietnamese-market stock data API exposing
// top-by-market-cap listings and per-symbol profile/quote lookups.
type StockClient interface {
	TopListings(ctx context.Context, limit int) ([]StockListing, error)
	Detail(ctx context.Context, symbol string) (*StockDetail, error)
}

type StockClientImpl struct {
	baseURL    string
	httpClient *http.Client
}

func NewStockClient(baseURL string) StockClient {
	return &StockClientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *StockClientImpl) TopListings(ctx context.Context, limit int) ([]StockListing, error) {
	query := url.Values{
		"symbol": {"VNINDEX"},
		"size":   {strconv.Itoa(limit)},
		"sort":   {"marketCap"},
		"order":  {"desc"},
	}

	var payload struct {
		Data []struct {
			Ticker             string  `json:"ticker"`
			Price              float64 `json:"price"`
			PercentPriceChange float64 `json:"percentPriceChange"`
			TotalMatchVolume   float64 `json:"totalMatchVolume"`
			MarketCap          float64 `json:"marketCap"`
			IndustryName       string  `json:"industryName"`
		} `json:"data"`
	}
	if err := c.get(ctx, c.baseURL+"/stocks/top?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	listings := make([]StockListing, 0, len(payload.Data))
	for _, row := range payload.Data {
		industry := row.IndustryName
		if industry == "" {
			industry = "N/A"
		}
		listings = append(listings, StockListing{
			Ticker:        row.Ticker,
			Price:         row.Price,
			PercentChange: row.PercentPriceChange,
			Volume:        row.TotalMatchVolume,
			MarketCap:     row.MarketCap,
			Industry:      industry,
		})
	}
	return listings, nil
}

func (c *StockClientImpl) Detail(ctx context.Context, symbol string) (*StockDetail, error) {
	symbol = strings.ToUpper(symbol)

	var profile struct {
		CompanyName  string  `json:"companyName"`
		IndustryName string  `json:"industryName"`
		MarketCap    float64 `json:"marketCap"`
		PE           float64 `json:"pe"`
		ROE          float64 `json:"roe"`
		EPS          float64 `json:"eps"`
	}
	if err := c.get(ctx, c.baseURL+"/stocks/"+symbol+"/profile", &profile); err != nil {
		return nil, err
	}

	var quote struct {
		Price              float64 `json:"price"`
		PercentPriceChange float64 `json:"percentPriceChange"`
	}
	if err := c.get(ctx, c.baseURL+"/stocks/"+symbol+"/quote", &quote); err != nil {
		return nil, err
	}

	return &StockDetail{
		Ticker:        symbol,
		CompanyName:   profile.CompanyName,
		Industry:      profile.IndustryName,
		Price:         quote.Price,
		ChangePercent: quote.PercentPriceChange,
		MarketCap:     profile.MarketCap,
		PERatio:       profile.PE,
		ROE:           profile.ROE,
		EPS:           profile.EPS,
	}, nil
}

func (c *StockClientImpl) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build stock request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stock request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("symbol not found")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stock API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode stock response: %w", err)
	}
	return nil
}
