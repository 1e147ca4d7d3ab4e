package params

import "time"

type FinancialSummaryResponse struct {
	TotalIncome  float64  `json:"total_income"`
	TotalExpense float64  `json:"total_expense"`
	TotalInvest  float64  `json:"total_invest"`
	TotalDebt    float64  `json:"total_debt"`
	NetCashFlow  float64  `json:"net_cash_flow"`
	Insights     []string `json:"insights"`
}

type RangePoint struct {
	Time   time.Time `json:"time"`
	Amount float64   `json:"amount"`
}

type VisualizeResponse struct {
	FigURL string `json:"fig_url"`
}
