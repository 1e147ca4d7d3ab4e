package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-finance-assistant/internal/entity"
	"go-finance-assistant/internal/repository"
	"go-finance-assistant/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAnalysisTest(t *testing.T) (*repository.MockLedgerRepository, usecase.AnalysisUsecase) {
	mockRepo := new(repository.MockLedgerRepository)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	au := usecase.NewAnalysisUsecase(mockRepo, logger)

	return mockRepo, au
}

func daysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format(time.RFC3339)
}

func TestFinancialSummary_NetCashFlow(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	mockRepo.On("ListTransactions", mock.Anything).Return([]*entity.Transaction{
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 1000, Time: daysAgo(5)},
		{Wallet: "cash", Type: entity.TransactionTypeExpense, Amount: 300, Time: daysAgo(3)},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 500, Time: daysAgo(60)}, // outside window
	}, nil)
	mockRepo.On("ListInvestments", mock.Anything).Return([]*entity.Investment{
		{AssetName: "VNM", AmountInvested: 200, StartDate: daysAgo(10)},
	}, nil)
	mockRepo.On("ListDebts", mock.Anything).Return([]*entity.Debt{
		{Name: "loan", Amount: 100, StartDate: daysAgo(2)},
	}, nil)

	summary, err := uc.FinancialSummary(context.Background())

	assert.Nil(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, 1000.0, summary.TotalIncome)
	assert.Equal(t, 300.0, summary.TotalExpense)
	assert.Equal(t, 200.0, summary.TotalInvest)
	assert.Equal(t, 100.0, summary.TotalDebt)
	assert.Equal(t, 600.0, summary.NetCashFlow)

	mockRepo.AssertExpectations(t)
}

func TestFinancialSummary_EmptyLedger(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	mockRepo.On("ListTransactions", mock.Anything).Return([]*entity.Transaction{}, nil)
	mockRepo.On("ListInvestments", mock.Anything).Return([]*entity.Investment{}, nil)
	mockRepo.On("ListDebts", mock.Anything).Return([]*entity.Debt{}, nil)

	summary, err := uc.FinancialSummary(context.Background())

	assert.Nil(t, err)
	assert.NotNil(t, summary)
	assert.Equal(t, 0.0, summary.NetCashFlow)

	// A zero ledger still reads as non-negative cash flow.
	assert.NotEmpty(t, summary.Insights)
	assert.Contains(t, summary.Insights[0], "Positive net cash flow")

	mockRepo.AssertExpectations(t)
}

func TestFinancialSummary_OverspendingInsight(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	mockRepo.On("ListTransactions", mock.Anything).Return([]*entity.Transaction{
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 100, Time: daysAgo(1)},
		{Wallet: "cash", Type: entity.TransactionTypeExpense, Amount: 400, Time: daysAgo(1)},
	}, nil)
	mockRepo.On("ListInvestments", mock.Anything).Return([]*entity.Investment{}, nil)
	mockRepo.On("ListDebts", mock.Anything).Return([]*entity.Debt{}, nil)

	summary, err := uc.FinancialSummary(context.Background())

	assert.Nil(t, err)
	assert.Contains(t, summary.Insights, "Expenses exceeded income in this period.")

	mockRepo.AssertExpectations(t)
}

func TestFinancialSummary_RepositoryError(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	mockRepo.On("ListTransactions", mock.Anything).Return(nil, errors.New("db error"))

	summary, err := uc.FinancialSummary(context.Background())

	assert.Nil(t, summary)
	assert.NotNil(t, err)
	assert.Equal(t, 500, err.StatusCode)

	mockRepo.AssertExpectations(t)
}

func TestTransactionsRange_FiltersAndSorts(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	mockRepo.On("ListTransactions", mock.Anything).Return([]*entity.Transaction{
		{Wallet: "cash", Type: entity.TransactionTypeExpense, Amount: 30, Time: daysAgo(1)},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 10, Time: daysAgo(6)},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 20, Time: daysAgo(3)},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 99, Time: daysAgo(20)}, // outside week
		{Wallet: "savings", Type: entity.TransactionTypeIncome, Amount: 50, Time: daysAgo(2)},
	}, nil)

	points, err := uc.TransactionsRange(context.Background(), "week", "cash")

	assert.Nil(t, err)
	assert.Len(t, points, 3)
	assert.Equal(t, 10.0, points[0].Amount)
	assert.Equal(t, 20.0, points[1].Amount)
	assert.Equal(t, 30.0, points[2].Amount)

	mockRepo.AssertExpectations(t)
}

func TestTransactionsRange_DefaultsToMonth(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	mockRepo.On("ListTransactions", mock.Anything).Return([]*entity.Transaction{
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 10, Time: daysAgo(20)},
	}, nil)

	points, err := uc.TransactionsRange(context.Background(), "", "")

	assert.Nil(t, err)
	assert.Len(t, points, 1)

	mockRepo.AssertExpectations(t)
}

func TestTransactionsRange_InvalidPeriod(t *testing.T) {
	_, uc := setupAnalysisTest(t)

	points, err := uc.TransactionsRange(context.Background(), "decade", "")

	assert.Nil(t, points)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.StatusCode)
}

func TestTransactionsRange_TimestampVariants(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	mockRepo.On("ListTransactions", mock.Anything).Return([]*entity.Transaction{
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 1, Time: yesterday.Format(time.RFC3339)},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 2, Time: yesterday.Format("2006-01-02T15:04:05")},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 3, Time: yesterday.Format("2006-01-02")},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 4, Time: "not-a-timestamp"},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 5, Time: ""},
	}, nil)

	points, err := uc.TransactionsRange(context.Background(), "week", "")

	assert.Nil(t, err)
	// Unparseable and empty timestamps are skipped, not raised.
	assert.Len(t, points, 3)

	mockRepo.AssertExpectations(t)
}

func TestTransactionsRange_DateOnlyEqualsMidnight(t *testing.T) {
	mockRepo, uc := setupAnalysisTest(t)

	day := time.Now().UTC().AddDate(0, 0, -2).Format("2006-01-02")

	mockRepo.On("ListTransactions", mock.Anything).Return([]*entity.Transaction{
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 1, Time: day},
		{Wallet: "cash", Type: entity.TransactionTypeIncome, Amount: 2, Time: day + "T00:00:00Z"},
	}, nil)

	points, err := uc.TransactionsRange(context.Background(), "week", "")

	assert.Nil(t, err)
	assert.Len(t, points, 2)
	assert.True(t, points[0].Time.Equal(points[1].Time))

	mockRepo.AssertExpectations(t)
}
