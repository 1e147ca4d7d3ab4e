package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/entity"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/repository"

	"github.com/sirupsen/logrus"
)

const summaryWindowDays = 30

var periodDays = map[string]int{
	"week":  7,
	"month": 30,
	"year":  365,
}

type AnalysisUsecase interface {
	FinancialSummary(ctx context.Context) (*params.FinancialSummaryResponse, *response.CustomError)
	TransactionsRange(ctx context.Context, period, wallet string) ([]params.RangePoint, *response.CustomError)
}

type AnalysisUsecaseImpl struct {
	repo   repository.LedgerRepository
	logger *logrus.Logger
}

func NewAnalysisUsecase(repo repository.LedgerRepository, logger *logrus.Logger) AnalysisUsecase {
	return &AnalysisUsecaseImpl{
		repo:   repo,
		logger: logger,
	}
}

// parseLedgerTime accepts RFC3339 timestamps (with or without the UTC
// marker), naive ISO timestamps, and plain dates. Anything else is skipped
// by the caller rather than raised.
func parseLedgerTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t.UTC(), true
	}
	datePart := strings.SplitN(value, "T", 2)[0]
	if t, err := time.Parse("2006-01-02", datePart); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func (u *AnalysisUsecaseImpl) FinancialSummary(ctx context.Context) (*params.FinancialSummaryResponse, *response.CustomError) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -summaryWindowDays)
	inWindow := func(raw string) bool {
		t, ok := parseLedgerTime(raw)
		return ok && !t.Before(start) && !t.After(end)
	}

	transactions, err := u.repo.ListTransactions(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to read transactions for summary")
		return nil, response.RepositoryError("failed to read transactions")
	}
	investments, err := u.repo.ListInvestments(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to read investments for summary")
		return nil, response.RepositoryError("failed to read investments")
	}
	debts, err := u.repo.ListDebts(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to read debts for summary")
		return nil, response.RepositoryError("failed to read debts")
	}

	summary := &params.FinancialSummaryResponse{}
	for _, t := range transactions {
		if !inWindow(t.Time) {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			summary.TotalIncome += t.Amount
		case entity.TransactionTypeExpense:
			summary.TotalExpense += t.Amount
		}
	}
	for _, inv := range investments {
		if inWindow(inv.StartDate) {
			summary.TotalInvest += inv.AmountInvested
		}
	}
	for _, d := range debts {
		if inWindow(d.StartDate) {
			summary.TotalDebt += d.Amount
		}
	}

	summary.NetCashFlow = summary.TotalIncome - summary.TotalExpense - summary.TotalInvest + summary.TotalDebt
	summary.Insights = buildInsights(summary)

	return summary, nil
}

func buildInsights(s *params.FinancialSummaryResponse) []string {
	insights := make([]string, 0, 3)

	if s.NetCashFlow >= 0 {
		insights = append(insights, fmt.Sprintf("Positive net cash flow of %.2f over the last %d days.", s.NetCashFlow, summaryWindowDays))
	} else {
		insights = append(insights, fmt.Sprintf("Negative net cash flow of %.2f over the last %d days; outflows exceed inflows.", s.NetCashFlow, summaryWindowDays))
	}

	if s.TotalExpense > s.TotalIncome {
		insights = append(insights, "Expenses exceeded income in this period.")
	}

	if s.TotalInvest > s.TotalIncome/2 {
		insights = append(insights, "More than half of income was allocated to investments this period.")
	}

	return insights
}

func (u *AnalysisUsecaseImpl) TransactionsRange(ctx context.Context, period, wallet string) ([]params.RangePoint, *response.CustomError) {
	p := strings.ToLower(period)
	if p == "" {
		p = "month"
	}
	days, ok := periodDays[p]
	if !ok {
		return nil, response.BadRequestError(fmt.Sprintf("invalid period '%s': expected one of week, month, year", period))
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	transactions, err := u.repo.ListTransactions(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to read transactions for range")
		return nil, response.RepositoryError("failed to read transactions")
	}

	points := make([]params.RangePoint, 0, len(transactions))
	for _, t := range transactions {
		if wallet != "" && t.Wallet != wallet {
			continue
		}
		parsed, ok := parseLedgerTime(t.Time)
		if !ok {
			continue
		}
		if parsed.Before(start) || parsed.After(end) {
			continue
		}
		points = append(points, params.RangePoint{Time: parsed, Amount: t.Amount})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})

	return points, nil
}
