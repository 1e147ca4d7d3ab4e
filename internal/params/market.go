package params

import "go-finance-assistant/pkg/marketdata"

type CompareAssetsRequest struct {
	Assets []string `json:"assets" validate:"required,min=1,max=20,dive,required,max=10"`
}

type AssetComparison struct {
	Asset  string      `json:"asset"`
	Type   string      `json:"type,omitempty"`
	Detail interface{} `json:"detail,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type MarketOverviewResponse struct {
	TopCryptos  []marketdata.CryptoListing `json:"top_cryptos"`
	TopVNStocks []marketdata.StockListing  `json:"top_vn_stocks"`
}

type PortfolioRequest struct {
	Risk string `json:"risk" validate:"omitempty,oneof=low medium high"`
	Goal string `json:"goal" validate:"omitempty,max=50"`
}

type PortfolioResponse struct {
	RiskProfile           string         `json:"risk_profile"`
	Goal                  string         `json:"goal"`
	RecommendedAllocation map[string]int `json:"recommended_allocation"`
}
