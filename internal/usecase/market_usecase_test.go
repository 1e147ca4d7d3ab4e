package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/usecase"
	"go-finance-assistant/pkg/marketdata"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeCryptoClient struct {
	listings []marketdata.CryptoListing
	quotes   map[string]*marketdata.CryptoDetail
	err      error
	calls    int
}

func (f *fakeCryptoClient) TopListings(ctx context.Context, limit int) ([]marketdata.CryptoListing, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

func (f *fakeCryptoClient) Quote(ctx context.Context, symbol string) (*marketdata.CryptoDetail, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if q, ok := f.quotes[symbol]; ok {
		return q, nil
	}
	return nil, errors.New("symbol not found")
}

type fakeStockClient struct {
	listings []marketdata.StockListing
	details  map[string]*marketdata.StockDetail
	err      error
	calls    int
}

func (f *fakeStockClient) TopListings(ctx context.Context, limit int) ([]marketdata.StockListing, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

func (f *fakeStockClient) Detail(ctx context.Context, symbol string) (*marketdata.StockDetail, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if d, ok := f.details[symbol]; ok {
		return d, nil
	}
	return nil, errors.New("ticker not found")
}

func setupMarketTest(t *testing.T, crypto *fakeCryptoClient, stocks *fakeStockClient) usecase.MarketUsecase {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return usecase.NewMarketUsecase(crypto, stocks, logger, rdb, 5*time.Minute)
}

func TestTopCrypto_CachesListings(t *testing.T) {
	crypto := &fakeCryptoClient{
		listings: []marketdata.CryptoListing{
			{Name: "Bitcoin", Symbol: "BTC", PriceUSD: 60000},
		},
	}
	uc := setupMarketTest(t, crypto, &fakeStockClient{})

	first, err := uc.TopCrypto(context.Background())
	assert.Nil(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, crypto.calls)

	// Second call is served from redis without touching the client.
	second, err := uc.TopCrypto(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, crypto.calls)
}

func TestTopCrypto_UpstreamFailure(t *testing.T) {
	crypto := &fakeCryptoClient{err: errors.New("rate limited")}
	uc := setupMarketTest(t, crypto, &fakeStockClient{})

	listings, err := uc.TopCrypto(context.Background())

	assert.Nil(t, listings)
	assert.NotNil(t, err)
	assert.Equal(t, 502, err.StatusCode)
}

func TestCryptoQuote_NormalizesSymbol(t *testing.T) {
	crypto := &fakeCryptoClient{
		quotes: map[string]*marketdata.CryptoDetail{
			"BTC": {Name: "Bitcoin", Symbol: "BTC", PriceUSD: 60000},
		},
	}
	uc := setupMarketTest(t, crypto, &fakeStockClient{})

	detail, err := uc.CryptoQuote(context.Background(), "btc")

	assert.Nil(t, err)
	assert.Equal(t, "BTC", detail.Symbol)
}

func TestOverview_CombinesMarkets(t *testing.T) {
	crypto := &fakeCryptoClient{
		listings: []marketdata.CryptoListing{{Symbol: "BTC"}},
	}
	stocks := &fakeStockClient{
		listings: []marketdata.StockListing{{Ticker: "VNM"}},
	}
	uc := setupMarketTest(t, crypto, stocks)

	overview, err := uc.Overview(context.Background())

	assert.Nil(t, err)
	assert.Len(t, overview.TopCryptos, 1)
	assert.Len(t, overview.TopVNStocks, 1)
}

func TestCompareAssets_StockFirstCryptoFallback(t *testing.T) {
	crypto := &fakeCryptoClient{
		quotes: map[string]*marketdata.CryptoDetail{
			"BTC": {Symbol: "BTC", PriceUSD: 60000},
		},
	}
	stocks := &fakeStockClient{
		details: map[string]*marketdata.StockDetail{
			"VNM": {Ticker: "VNM", Price: 80000},
		},
	}
	uc := setupMarketTest(t, crypto, stocks)

	results, err := uc.CompareAssets(context.Background(), []string{"VNM", "BTC", "NOPE"})

	assert.Nil(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "stock", results[0].Type)
	assert.Equal(t, "crypto", results[1].Type)
	assert.NotEmpty(t, results[2].Error)
}

func TestSuggestPortfolio_RiskProfiles(t *testing.T) {
	uc := setupMarketTest(t, &fakeCryptoClient{}, &fakeStockClient{})

	low := uc.SuggestPortfolio(&params.PortfolioRequest{Risk: "low"})
	assert.Equal(t, 70, low.RecommendedAllocation["bonds_or_safe_stocks"])

	high := uc.SuggestPortfolio(&params.PortfolioRequest{Risk: "HIGH"})
	assert.Equal(t, 40, high.RecommendedAllocation["crypto"])

	def := uc.SuggestPortfolio(&params.PortfolioRequest{})
	assert.Equal(t, "medium", def.RiskProfile)
	assert.Equal(t, "balanced", def.Goal)
}
