package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type CryptoClient interface {
	TopListings(ctx context.Context, limit int) ([]CryptoListing, error)
	Quote(ctx context.Context, symbol string) (*CryptoDetail, error)
}

type CryptoClientImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewCryptoClient(baseURL, apiKey string) CryptoClient {
	return &CryptoClientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type cryptoQuote struct {
	Price            float64 `json:"price"`
	PercentChange24h float64 `json:"percent_change_24h"`
	MarketCap        float64 `json:"market_cap"`
	Volume24h        float64 `json:"volume_24h"`
}

type cryptoEntry struct {
	Name              string                 `json:"name"`
	Symbol            string                 `json:"symbol"`
	CirculatingSupply float64                `json:"circulating_supply"`
	CmcRank           int                    `json:"cmc_rank"`
	Quote             map[string]cryptoQuote `json:"quote"`
}

func (c *CryptoClientImpl) TopListings(ctx context.Context, limit int) ([]CryptoListing, error) {
	endpoint := c.baseURL + "/v1/cryptocurrency/listings/latest"
	query := url.Values{
		"start":   {"1"},
		"limit":   {strconv.Itoa(limit)},
		"convert": {"USD"},
	}

	var payload struct {
		Data []cryptoEntry `json:"data"`
	}
	if err := c.get(ctx, endpoint+"?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	listings := make([]CryptoListing, 0, len(payload.Data))
	for _, entry := range payload.Data {
		usd := entry.Quote["USD"]
		listings = append(listings, CryptoListing{
			Name:             entry.Name,
			Symbol:           entry.Symbol,
			PriceUSD:         round2(usd.Price),
			PercentChange24h: round2(usd.PercentChange24h),
			MarketCap:        round2(usd.MarketCap),
		})
	}
	return listings, nil
}

func (c *CryptoClientImpl) Quote(ctx context.Context, symbol string) (*CryptoDetail, error) {
	symbol = strings.ToUpper(symbol)
	endpoint := c.baseURL + "/v1/cryptocurrency/quotes/latest"
	query := url.Values{
		"symbol":  {symbol},
		"convert": {"USD"},
	}

	var payload struct {
		Data map[string]cryptoEntry `json:"data"`
	}
	if err := c.get(ctx, endpoint+"?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	entry, ok := payload.Data[symbol]
	if !ok {
		return nil, fmt.Errorf("symbol %s not found", symbol)
	}

	usd := entry.Quote["USD"]
	return &CryptoDetail{
		Name:              entry.Name,
		Symbol:            entry.Symbol,
		PriceUSD:          round2(usd.Price),
		PercentChange24h:  round2(usd.PercentChange24h),
		MarketCap:         round2(usd.MarketCap),
		Volume24h:         round2(usd.Volume24h),
		CirculatingSupply: round2(entry.CirculatingSupply),
		Rank:              entry.CmcRank,
	}, nil
}

func (c *CryptoClientImpl) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build crypto request: %w", err)
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crypto request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("crypto API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode crypto response: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
