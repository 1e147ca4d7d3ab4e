package marketdata

type CryptoListing struct {
	Name             string  `json:"name"`
	Symbol           string  `json:"symbol"`
	PriceUSD         float64 `json:"price_usd"`
	PercentChange24h float64 `json:"percent_change_24h"`
	MarketCap        float64 `json:"market_cap"`
}

type CryptoDetail struct {
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	PriceUSD          float64 `json:"price_usd"`
	PercentChange24h  float64 `json:"percent_change_24h"`
	MarketCap         float64 `json:"market_cap"`
	Volume24h         float64 `json:"volume_24h"`
	CirculatingSupply float64 `json:"circulating_supply"`
	Rank              int     `json:"rank"`
}

type StockListing struct {
	Ticker        string  `json:"ticker"`
	Price         float64 `json:"price"`
	PercentChange float64 `json:"percent_change"`
	Volume        float64 `json:"volume"`
	MarketCap     float64 `json:"market_cap"`
	Industry      string  `json:"industry"`
}

type StockDetail struct {
	Ticker        string  `json:"ticker"`
	CompanyName   string  `json:"company_name"`
	Industry      string  `json:"industry"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	MarketCap     float64 `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
	ROE           float64 `json:"roe"`
	EPS           float64 `json:"eps"`
}
