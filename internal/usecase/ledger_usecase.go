package usecase

import (
	"context"
	"errors"
	"time"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/entity"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DebtDeletionPolicy names what deleting a debt record does to the wallet
// the debt credited. "repay" debits the borrowed amount back out; "forgive"
// leaves the balance untouched.
type DebtDeletionPolicy string

const (
	DebtDeleteRepay   DebtDeletionPolicy = "repay"
	DebtDeleteForgive DebtDeletionPolicy = "forgive"
)

func ParseDebtDeletionPolicy(s string) DebtDeletionPolicy {
	if DebtDeletionPolicy(s) == DebtDeleteForgive {
		return DebtDeleteForgive
	}
	return DebtDeleteRepay
}

type LedgerUsecase interface {
	CreateWallet(ctx context.Context, req *params.CreateWalletRequest) (*params.WalletResponse, *response.CustomError)
	ListWallets(ctx context.Context) ([]*params.WalletResponse, *response.CustomError)
	PatchWallet(ctx context.Context, name string, patch *params.WalletPatch) *response.CustomError

	CreateTransaction(ctx context.Context, req *params.CreateTransactionRequest) (*params.TransactionResponse, *response.CustomError)
	ListTransactions(ctx context.Context) ([]*params.TransactionResponse, *response.CustomError)
	PatchTransaction(ctx context.Context, id int64, patch *params.TransactionPatch) *response.CustomError
	DeleteTransaction(ctx context.Context, id int64) *response.CustomError

	CreateInvestment(ctx context.Context, req *params.CreateInvestmentRequest) (*params.InvestmentResponse, *response.CustomError)
	ListInvestments(ctx context.Context) ([]*params.InvestmentResponse, *response.CustomError)
	PatchInvestment(ctx context.Context, id int64, patch *params.InvestmentPatch) *response.CustomError
	DeleteInvestment(ctx context.Context, id int64) *response.CustomError

	CreateDebt(ctx context.Context, req *params.CreateDebtRequest) (*params.DebtResponse, *response.CustomError)
	ListDebts(ctx context.Context) ([]*params.DebtResponse, *response.CustomError)
	PatchDebt(ctx context.Context, id int64, patch *params.DebtPatch) *response.CustomError
	DeleteDebt(ctx context.Context, id int64) *response.CustomError
}

type LedgerUsecaseImpl struct {
	repo       repository.LedgerRepository
	logger     *logrus.Logger
	debtPolicy DebtDeletionPolicy
}

func NewLedgerUsecase(repo repository.LedgerRepository, logger *logrus.Logger, debtPolicy DebtDeletionPolicy) LedgerUsecase {
	return &LedgerUsecaseImpl{
		repo:       repo,
		logger:     logger,
		debtPolicy: debtPolicy,
	}
}

func (u *LedgerUsecaseImpl) CreateWallet(ctx context.Context, req *params.CreateWalletRequest) (*params.WalletResponse, *response.CustomError) {
	wallet := &entity.Wallet{
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	}

	if err := u.repo.CreateWallet(ctx, wallet); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.DuplicateKeyError("wallet with this name already exists")
		}
		u.logger.WithError(err).WithField("wallet", req.Name).Error("Failed to create wallet")
		return nil, response.RepositoryError("failed to create wallet")
	}

	return params.NewWalletResponse(wallet), nil
}

func (u *LedgerUsecaseImpl) ListWallets(ctx context.Context) ([]*params.WalletResponse, *response.CustomError) {
	wallets, err := u.repo.ListWallets(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list wallets")
		return nil, response.RepositoryError("failed to list wallets")
	}

	responses := make([]*params.WalletResponse, len(wallets))
	for i, w := range wallets {
		responses[i] = params.NewWalletResponse(w)
	}
	return responses, nil
}

// PatchWallet applies the fields set on the patch verbatim. Patching balance
// does not reconcile it against the transaction history; the caller owns the
// ledger invariant (a deliberate carry-over from the original contract).
func (u *LedgerUsecaseImpl) PatchWallet(ctx context.Context, name string, patch *params.WalletPatch) *response.CustomError {
	fields := patch.Fields()
	if len(fields) == 0 {
		return response.BadRequestError("no fields to update")
	}

	if err := u.repo.UpdateWallet(ctx, name, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("wallet not found")
		}
		u.logger.WithError(err).WithField("wallet", name).Error("Failed to update wallet")
		return response.RepositoryError("failed to update wallet")
	}
	return nil
}

func (u *LedgerUsecaseImpl) CreateTransaction(ctx context.Context, req *params.CreateTransactionRequest) (*params.TransactionResponse, *response.CustomError) {
	if _, err := u.repo.GetWallet(ctx, req.Wallet); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("wallet not found")
		}
		u.logger.WithError(err).WithField("wallet", req.Wallet).Error("Failed to look up wallet")
		return nil, response.RepositoryError("failed to look up wallet")
	}

	category := req.Category
	if category == "" {
		category = "None"
	}
	txTime := req.Time
	if txTime == "" {
		txTime = time.Now().UTC().Format(time.RFC3339)
	}

	transaction := &entity.Transaction{
		Wallet:      req.Wallet,
		Category:    category,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		Time:        txTime,
	}

	if err := u.repo.CreateTransaction(ctx, transaction); err != nil {
		u.logger.WithError(err).Error("Failed to create transaction")
		return nil, response.RepositoryError("failed to create transaction")
	}

	// The row insert and the balance adjustment are two separate statements.
	// A failure here leaves a transaction row whose wallet effect was never
	// applied; the error is surfaced rather than rolled back.
	if delta, ok := balanceDelta(transaction.Type, transaction.Amount); ok {
		if err := u.repo.AdjustBalance(ctx, req.Wallet, delta); err != nil {
			u.logger.WithError(err).WithFields(logrus.Fields{
				"wallet":         req.Wallet,
				"transaction_id": transaction.ID,
				"delta":          delta,
			}).Error("Transaction recorded but balance adjustment failed; wallet balance is now stale")
			return nil, response.RepositoryError("transaction recorded but balance update failed")
		}
	}

	u.logger.WithFields(logrus.Fields{
		"wallet":         req.Wallet,
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
		"amount":         transaction.Amount,
	}).Info("Transaction recorded")

	return params.NewTransactionResponse(transaction), nil
}

// balanceDelta maps a transaction type to its wallet balance effect. Invest
// and debt rows have no effect of their own; the Investment and Debt
// entities book those.
func balanceDelta(txType entity.TransactionType, amount float64) (float64, bool) {
	switch txType {
	case entity.TransactionTypeIncome:
		return amount, true
	case entity.TransactionTypeExpense:
		return -amount, true
	default:
		return 0, false
	}
}

func (u *LedgerUsecaseImpl) ListTransactions(ctx context.Context) ([]*params.TransactionResponse, *response.CustomError) {
	transactions, err := u.repo.ListTransactions(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list transactions")
		return nil, response.RepositoryError("failed to list transactions")
	}

	responses := make([]*params.TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = params.NewTransactionResponse(t)
	}
	return responses, nil
}

func (u *LedgerUsecaseImpl) PatchTransaction(ctx context.Context, id int64, patch *params.TransactionPatch) *response.CustomError {
	fields := patch.Fields()
	if len(fields) == 0 {
		return response.BadRequestError("no fields to update")
	}

	if err := u.repo.UpdateTransaction(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("transaction not found")
		}
		u.logger.WithError(err).WithField("transaction_id", id).Error("Failed to update transaction")
		return response.RepositoryError("failed to update transaction")
	}
	return nil
}

func (u *LedgerUsecaseImpl) DeleteTransaction(ctx context.Context, id int64) *response.CustomError {
	// The row must be read before it is deleted; its wallet, amount and type
	// drive the reversal.
	transaction, err := u.repo.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("transaction not found")
		}
		u.logger.WithError(err).WithField("transaction_id", id).Error("Failed to read transaction for deletion")
		return response.RepositoryError("failed to read transaction")
	}

	if delta, ok := balanceDelta(transaction.Type, transaction.Amount); ok {
		if err := u.repo.AdjustBalance(ctx, transaction.Wallet, -delta); err != nil {
			u.logger.WithError(err).WithFields(logrus.Fields{
				"wallet":         transaction.Wallet,
				"transaction_id": id,
			}).Error("Failed to reverse balance effect before transaction delete")
			return response.RepositoryError("failed to reverse balance effect")
		}
	}

	if err := u.repo.DeleteTransaction(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("transaction not found")
		}
		u.logger.WithError(err).WithField("transaction_id", id).
			Error("Balance reversed but transaction delete failed; wallet balance is now stale")
		return response.RepositoryError("failed to delete transaction")
	}

	return nil
}

func (u *LedgerUsecaseImpl) CreateInvestment(ctx context.Context, req *params.CreateInvestmentRequest) (*params.InvestmentResponse, *response.CustomError) {
	if _, err := u.repo.GetWallet(ctx, req.FromWallet); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("wallet not found")
		}
		u.logger.WithError(err).WithField("wallet", req.FromWallet).Error("Failed to look up wallet")
		return nil, response.RepositoryError("failed to look up wallet")
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = time.Now().UTC().Format(time.RFC3339)
	}

	investment := &entity.Investment{
		AssetName:        req.AssetName,
		Type:             req.Type,
		AmountInvested:   req.AmountInvested,
		CurrentValue:     req.AmountInvested,
		Profit:           0,
		ProfitPercentage: 0,
		StartDate:        startDate,
		FromWallet:       req.FromWallet,
	}

	if err := u.repo.CreateInvestment(ctx, investment); err != nil {
		u.logger.WithError(err).Error("Failed to create investment")
		return nil, response.RepositoryError("failed to create investment")
	}

	if err := u.repo.AdjustBalance(ctx, req.FromWallet, -req.AmountInvested); err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{
			"wallet":        req.FromWallet,
			"investment_id": investment.ID,
		}).Error("Investment recorded but balance adjustment failed; wallet balance is now stale")
		return nil, response.RepositoryError("investment recorded but balance update failed")
	}

	u.logger.WithFields(logrus.Fields{
		"investment_id": investment.ID,
		"asset":         investment.AssetName,
		"amount":        investment.AmountInvested,
		"from_wallet":   investment.FromWallet,
	}).Info("Investment recorded")

	return params.NewInvestmentResponse(investment), nil
}

func (u *LedgerUsecaseImpl) ListInvestments(ctx context.Context) ([]*params.InvestmentResponse, *response.CustomError) {
	investments, err := u.repo.ListInvestments(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list investments")
		return nil, response.RepositoryError("failed to list investments")
	}

	responses := make([]*params.InvestmentResponse, len(investments))
	for i, inv := range investments {
		responses[i] = params.NewInvestmentResponse(inv)
	}
	return responses, nil
}

func (u *LedgerUsecaseImpl) PatchInvestment(ctx context.Context, id int64, patch *params.InvestmentPatch) *response.CustomError {
	fields := patch.Fields()
	if len(fields) == 0 {
		return response.BadRequestError("no fields to update")
	}

	if err := u.repo.UpdateInvestment(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("investment not found")
		}
		u.logger.WithError(err).WithField("investment_id", id).Error("Failed to update investment")
		return response.RepositoryError("failed to update investment")
	}
	return nil
}

// DeleteInvestment credits back the amount originally invested, not the
// current value; realized profit or loss is not reconciled on exit.
func (u *LedgerUsecaseImpl) DeleteInvestment(ctx context.Context, id int64) *response.CustomError {
	investment, err := u.repo.GetInvestment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("investment not found")
		}
		u.logger.WithError(err).WithField("investment_id", id).Error("Failed to read investment for deletion")
		return response.RepositoryError("failed to read investment")
	}

	if err := u.repo.AdjustBalance(ctx, investment.FromWallet, investment.AmountInvested); err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{
			"wallet":        investment.FromWallet,
			"investment_id": id,
		}).Error("Failed to credit wallet before investment delete")
		return response.RepositoryError("failed to reverse balance effect")
	}

	if err := u.repo.DeleteInvestment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("investment not found")
		}
		u.logger.WithError(err).WithField("investment_id", id).
			Error("Balance credited but investment delete failed; wallet balance is now stale")
		return response.RepositoryError("failed to delete investment")
	}

	return nil
}

func (u *LedgerUsecaseImpl) CreateDebt(ctx context.Context, req *params.CreateDebtRequest) (*params.DebtResponse, *response.CustomError) {
	if _, err := u.repo.GetWallet(ctx, req.ToWallet); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("wallet not found")
		}
		u.logger.WithError(err).WithField("wallet", req.ToWallet).Error("Failed to look up wallet")
		return nil, response.RepositoryError("failed to look up wallet")
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = time.Now().UTC().Format(time.RFC3339)
	}

	debt := &entity.Debt{
		Name:         req.Name,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		StartDate:    startDate,
		DueDate:      req.DueDate,
		ToWallet:     req.ToWallet,
	}

	if err := u.repo.CreateDebt(ctx, debt); err != nil {
		u.logger.WithError(err).Error("Failed to create debt")
		return nil, response.RepositoryError("failed to create debt")
	}

	// Borrowing increases spendable cash.
	if err := u.repo.AdjustBalance(ctx, req.ToWallet, req.Amount); err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{
			"wallet":  req.ToWallet,
			"debt_id": debt.ID,
		}).Error("Debt recorded but balance adjustment failed; wallet balance is now stale")
		return nil, response.RepositoryError("debt recorded but balance update failed")
	}

	u.logger.WithFields(logrus.Fields{
		"debt_id":   debt.ID,
		"name":      debt.Name,
		"amount":    debt.Amount,
		"to_wallet": debt.ToWallet,
	}).Info("Debt recorded")

	return params.NewDebtResponse(debt), nil
}

func (u *LedgerUsecaseImpl) ListDebts(ctx context.Context) ([]*params.DebtResponse, *response.CustomError) {
	debts, err := u.repo.ListDebts(ctx)
	if err != nil {
		u.logger.WithError(err).Error("Failed to list debts")
		return nil, response.RepositoryError("failed to list debts")
	}

	responses := make([]*params.DebtResponse, len(debts))
	for i, d := range debts {
		responses[i] = params.NewDebtResponse(d)
	}
	return responses, nil
}

func (u *LedgerUsecaseImpl) PatchDebt(ctx context.Context, id int64, patch *params.DebtPatch) *response.CustomError {
	fields := patch.Fields()
	if len(fields) == 0 {
		return response.BadRequestError("no fields to update")
	}

	if err := u.repo.UpdateDebt(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("debt not found")
		}
		u.logger.WithError(err).WithField("debt_id", id).Error("Failed to update debt")
		return response.RepositoryError("failed to update debt")
	}
	return nil
}

func (u *LedgerUsecaseImpl) DeleteDebt(ctx context.Context, id int64) *response.CustomError {
	debt, err := u.repo.GetDebt(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("debt not found")
		}
		u.logger.WithError(err).WithField("debt_id", id).Error("Failed to read debt for deletion")
		return response.RepositoryError("failed to read debt")
	}

	if u.debtPolicy == DebtDeleteRepay {
		if err := u.repo.AdjustBalance(ctx, debt.ToWallet, -debt.Amount); err != nil {
			u.logger.WithError(err).WithFields(logrus.Fields{
				"wallet":  debt.ToWallet,
				"debt_id": id,
			}).Error("Failed to debit wallet before debt delete")
			return response.RepositoryError("failed to reverse balance effect")
		}
	}

	if err := u.repo.DeleteDebt(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("debt not found")
		}
		u.logger.WithError(err).WithField("debt_id", id).
			Error("Balance adjusted but debt delete failed; wallet balance is now stale")
		return response.RepositoryError("failed to delete debt")
	}

	return nil
}
