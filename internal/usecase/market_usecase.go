package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/pkg/marketdata"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const topListingsLimit = 10

type MarketUsecase interface {
	TopCrypto(ctx context.Context) ([]marketdata.CryptoListing, *response.CustomError)
	CryptoQuote(ctx context.Context, symbol string) (*marketdata.CryptoDetail, *response.CustomError)
	TopStocks(ctx context.Context) ([]marketdata.StockListing, *response.CustomError)
	StockDetail(ctx context.Context, symbol string) (*marketdata.StockDetail, *response.CustomError)
	Overview(ctx context.Context) (*params.MarketOverviewResponse, *response.CustomError)
	CompareAssets(ctx context.Context, assets []string) ([]params.AssetComparison, *response.CustomError)
	SuggestPortfolio(req *params.PortfolioRequest) *params.PortfolioResponse
}

type MarketUsecaseImpl struct {
	crypto   marketdata.CryptoClient
	stocks   marketdata.StockClient
	logger   *logrus.Logger
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewMarketUsecase(crypto marketdata.CryptoClient, stocks marketdata.StockClient, logger *logrus.Logger, cache *redis.Client, cacheTTL time.Duration) MarketUsecase {
	return &MarketUsecaseImpl{
		crypto:   crypto,
		stocks:   stocks,
		logger:   logger,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (u *MarketUsecaseImpl) TopCrypto(ctx context.Context) ([]marketdata.CryptoListing, *response.CustomError) {
	cacheKey := "market:crypto:top"

	var listings []marketdata.CryptoListing
	if u.cacheGet(ctx, cacheKey, &listings) {
		return listings, nil
	}

	listings, err := u.crypto.TopListings(ctx, topListingsLimit)
	if err != nil {
		u.logger.WithError(err).Error("Failed to fetch top crypto listings")
		return nil, response.ExternalServiceError("failed to fetch crypto listings")
	}

	u.cacheSet(ctx, cacheKey, listings)
	return listings, nil
}

func (u *MarketUsecaseImpl) CryptoQuote(ctx context.Context, symbol string) (*marketdata.CryptoDetail, *response.CustomError) {
	symbol = strings.ToUpper(symbol)
	cacheKey := fmt.Sprintf("market:crypto:%s", symbol)

	var detail marketdata.CryptoDetail
	if u.cacheGet(ctx, cacheKey, &detail) {
		return &detail, nil
	}

	quote, err := u.crypto.Quote(ctx, symbol)
	if err != nil {
		u.logger.WithError(err).WithField("symbol", symbol).Error("Failed to fetch crypto quote")
		return nil, response.ExternalServiceError(fmt.Sprintf("failed to fetch quote for %s", symbol))
	}

	u.cacheSet(ctx, cacheKey, quote)
	return quote, nil
}

func (u *MarketUsecaseImpl) TopStocks(ctx context.Context) ([]marketdata.StockListing, *response.CustomError) {
	cacheKey := "market:stocks:top"

	var listings []marketdata.StockListing
	if u.cacheGet(ctx, cacheKey, &listings) {
		return listings, nil
	}

	listings, err := u.stocks.TopListings(ctx, topListingsLimit)
	if err != nil {
		u.logger.WithError(err).Error("Failed to fetch top stock listings")
		return nil, response.ExternalServiceError("failed to fetch stock listings")
	}

	u.cacheSet(ctx, cacheKey, listings)
	return listings, nil
}

func (u *MarketUsecaseImpl) StockDetail(ctx context.Context, symbol string) (*marketdata.StockDetail, *response.CustomError) {
	symbol = strings.ToUpper(symbol)
	cacheKey := fmt.Sprintf("market:stocks:%s", symbol)

	var detail marketdata.StockDetail
	if u.cacheGet(ctx, cacheKey, &detail) {
		return &detail, nil
	}

	stock, err := u.stocks.Detail(ctx, symbol)
	if err != nil {
		u.logger.WithError(err).WithField("symbol", symbol).Error("Failed to fetch stock detail")
		return nil, response.ExternalServiceError(fmt.Sprintf("failed to fetch stock detail for %s", symbol))
	}

	u.cacheSet(ctx, cacheKey, stock)
	return stock, nil
}

func (u *MarketUsecaseImpl) Overview(ctx context.Context) (*params.MarketOverviewResponse, *response.CustomError) {
	cryptos, custErr := u.TopCrypto(ctx)
	if custErr != nil {
		return nil, custErr
	}
	stocks, custErr := u.TopStocks(ctx)
	if custErr != nil {
		return nil, custErr
	}

	return &params.MarketOverviewResponse{
		TopCryptos:  cryptos,
		TopVNStocks: stocks,
	}, nil
}

// CompareAssets resolves each asset against the stock API first and falls
// back to crypto. Per-asset failures land in the result row instead of
// failing the batch.
func (u *MarketUsecaseImpl) CompareAssets(ctx context.Context, assets []string) ([]params.AssetComparison, *response.CustomError) {
	results := make([]params.AssetComparison, 0, len(assets))

	for _, asset := range assets {
		if stock, custErr := u.StockDetail(ctx, asset); custErr == nil {
			results = append(results, params.AssetComparison{
				Asset:  asset,
				Type:   "stock",
				Detail: stock,
			})
			continue
		}

		if crypto, custErr := u.CryptoQuote(ctx, asset); custErr == nil {
			results = append(results, params.AssetComparison{
				Asset:  asset,
				Type:   "crypto",
				Detail: crypto,
			})
			continue
		}

		results = append(results, params.AssetComparison{
			Asset: asset,
			Error: "asset not found in stock or crypto markets",
		})
	}

	return results, nil
}

func (u *MarketUsecaseImpl) SuggestPortfolio(req *params.PortfolioRequest) *params.PortfolioResponse {
	risk := strings.ToLower(req.Risk)
	if risk == "" {
		risk = "medium"
	}
	goal := strings.ToLower(req.Goal)
	if goal == "" {
		goal = "balanced"
	}

	var allocation map[string]int
	switch risk {
	case "low":
		allocation = map[string]int{
			"bonds_or_safe_stocks": 70,
			"blue_chip_vn_stocks":  25,
			"crypto":               5,
		}
	case "high":
		allocation = map[string]int{
			"growth_stocks": 50,
			"crypto":        40,
			"cash":          10,
		}
	default:
		allocation = map[string]int{
			"vn_stocks":   50,
			"crypto":      30,
			"cash_or_etf": 20,
		}
	}

	return &params.PortfolioResponse{
		RiskProfile:           risk,
		Goal:                  goal,
		RecommendedAllocation: allocation,
	}
}

func (u *MarketUsecaseImpl) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if u.cache == nil {
		return false
	}
	val, err := u.cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	u.logger.WithField("cache_key", key).Debug("Cache hit for market data")
	return true
}

func (u *MarketUsecaseImpl) cacheSet(ctx context.Context, key string, value interface{}) {
	if u.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, key, data, u.cacheTTL).Err(); err != nil {
		u.logger.WithError(err).WithField("cache_key", key).Warn("Failed to cache market data")
	}
}
