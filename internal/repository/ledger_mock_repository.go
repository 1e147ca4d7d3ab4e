package repository

import (
	"context"

	"go-finance-assistant/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateWallet(ctx context.Context, wallet *entity.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetWallet(ctx context.Context, name string) (*entity.Wallet, error) {
	args := m.Called(ctx, name)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) ListWallets(ctx context.Context) ([]*entity.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) UpdateWallet(ctx context.Context, name string, fields map[string]interface{}) error {
	args := m.Called(ctx, name, fields)
	return args.Error(0)
}

func (m *MockLedgerRepository) AdjustBalance(ctx context.Context, name string, delta float64) error {
	args := m.Called(ctx, name, delta)
	return args.Error(0)
}

func (m *MockLedgerRepository) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetTransaction(ctx context.Context, id int64) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) UpdateTransaction(ctx context.Context, id int64, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerRepository) CreateInvestment(ctx context.Context, investment *entity.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetInvestment(ctx context.Context, id int64) (*entity.Investment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Investment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) ListInvestments(ctx context.Context) ([]*entity.Investment, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Investment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) UpdateInvestment(ctx context.Context, id int64, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteInvestment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerRepository) CreateDebt(ctx context.Context, debt *entity.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetDebt(ctx context.Context, id int64) (*entity.Debt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entity.Debt), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) ListDebts(ctx context.Context) ([]*entity.Debt, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]*entity.Debt), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) UpdateDebt(ctx context.Context, id int64, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteDebt(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
