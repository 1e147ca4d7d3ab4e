package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-finance-assistant/internal/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LedgerRepository interface {
	CreateWallet(ctx context.Context, wallet *entity.Wallet) error
	GetWallet(ctx context.Context, name string) (*entity.Wallet, error)
	ListWallets(ctx context.Context) ([]*entity.Wallet, error)
	UpdateWallet(ctx context.Context, name string, fields map[string]interface{}) error
	AdjustBalance(ctx context.Context, name string, delta float64) error

	CreateTransaction(ctx context.Context, transaction *entity.Transaction) error
	GetTransaction(ctx context.Context, id int64) (*entity.Transaction, error)
	ListTransactions(ctx context.Context) ([]*entity.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, fields map[string]interface{}) error
	DeleteTransaction(ctx context.Context, id int64) error

	CreateInvestment(ctx context.Context, investment *entity.Investment) error
	GetInvestment(ctx context.Context, id int64) (*entity.Investment, error)
	ListInvestments(ctx context.Context) ([]*entity.Investment, error)
	UpdateInvestment(ctx context.Context, id int64, fields map[string]interface{}) error
	DeleteInvestment(ctx context.Context, id int64) error

	CreateDebt(ctx context.Context, debt *entity.Debt) error
	GetDebt(ctx context.Context, id int64) (*entity.Debt, error)
	ListDebts(ctx context.Context) ([]*entity.Debt, error)
	UpdateDebt(ctx context.Context, id int64, fields map[string]interface{}) error
	DeleteDebt(ctx context.Context, id int64) error
}

type LedgerRepositoryImpl struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewLedgerRepository(db *gorm.DB, logger *logrus.Logger) LedgerRepository {
	return &LedgerRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *LedgerRepositoryImpl) CreateWallet(ctx context.Context, wallet *entity.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return gorm.ErrDuplicatedKey
		}
		r.logger.WithError(err).WithField("wallet", wallet.Name).Error("Failed to create wallet in database")
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *LedgerRepositoryImpl) GetWallet(ctx context.Context, name string) (*entity.Wallet, error) {
	var wallet entity.Wallet

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("wallet", name).Error("Failed to get wallet")
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &wallet, nil
}

func (r *LedgerRepositoryImpl) ListWallets(ctx context.Context) ([]*entity.Wallet, error) {
	var wallets []*entity.Wallet
	if err := r.db.WithContext(ctx).Find(&wallets).Error; err != nil {
		r.logger.WithError(err).Error("Failed to list wallets")
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *LedgerRepositoryImpl) UpdateWallet(ctx context.Context, name string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&entity.Wallet{}).Where("name = ?", name).Updates(fields)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("wallet", name).Error("Failed to update wallet")
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AdjustBalance applies a server-side increment so concurrent ledger events
// against the same wallet cannot lose updates to a read-then-write race.
func (r *LedgerRepositoryImpl) AdjustBalance(ctx context.Context, name string, delta float64) error {
	result := r.db.WithContext(ctx).Model(&entity.Wallet{}).
		Where("name = ?", name).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		r.logger.WithError(result.Error).WithFields(logrus.Fields{
			"wallet": name,
			"delta":  delta,
		}).Error("Failed to adjust wallet balance")
		return fmt.Errorf("failed to adjust wallet balance: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *LedgerRepositoryImpl) CreateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create transaction in database")
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *LedgerRepositoryImpl) GetTransaction(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("transaction_id", id).Error("Failed to get transaction")
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

func (r *LedgerRepositoryImpl) ListTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	var transactions []*entity.Transaction
	if err := r.db.WithContext(ctx).Find(&transactions).Error; err != nil {
		r.logger.WithError(err).Error("Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *LedgerRepositoryImpl) UpdateTransaction(ctx context.Context, id int64, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&entity.Transaction{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("transaction_id", id).Error("Failed to update transaction")
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LedgerRepositoryImpl) DeleteTransaction(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entity.Transaction{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("transaction_id", id).Error("Failed to delete transaction")
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LedgerRepositoryImpl) CreateInvestment(ctx context.Context, investment *entity.Investment) error {
	if err := r.db.WithContext(ctx).Create(investment).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create investment in database")
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

func (r *LedgerRepositoryImpl) GetInvestment(ctx context.Context, id int64) (*entity.Investment, error) {
	var investment entity.Investment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&investment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("investment_id", id).Error("Failed to get investment")
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}
	return &investment, nil
}

func (r *LedgerRepositoryImpl) ListInvestments(ctx context.Context) ([]*entity.Investment, error) {
	var investments []*entity.Investment
	if err := r.db.WithContext(ctx).Find(&investments).Error; err != nil {
		r.logger.WithError(err).Error("Failed to list investments")
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

func (r *LedgerRepositoryImpl) UpdateInvestment(ctx context.Context, id int64, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&entity.Investment{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("investment_id", id).Error("Failed to update investment")
		return fmt.Errorf("failed to update investment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LedgerRepositoryImpl) DeleteInvestment(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entity.Investment{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("investment_id", id).Error("Failed to delete investment")
		return fmt.Errorf("failed to delete investment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LedgerRepositoryImpl) CreateDebt(ctx context.Context, debt *entity.Debt) error {
	if err := r.db.WithContext(ctx).Create(debt).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create debt in database")
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

func (r *LedgerRepositoryImpl) GetDebt(ctx context.Context, id int64) (*entity.Debt, error) {
	var debt entity.Debt
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&debt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		r.logger.WithError(err).WithField("debt_id", id).Error("Failed to get debt")
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return &debt, nil
}

func (r *LedgerRepositoryImpl) ListDebts(ctx context.Context) ([]*entity.Debt, error) {
	var debts []*entity.Debt
	if err := r.db.WithContext(ctx).Find(&debts).Error; err != nil {
		r.logger.WithError(err).Error("Failed to list debts")
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

func (r *LedgerRepositoryImpl) UpdateDebt(ctx context.Context, id int64, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&entity.Debt{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("debt_id", id).Error("Failed to update debt")
		return fmt.Errorf("failed to update debt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LedgerRepositoryImpl) DeleteDebt(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&entity.Debt{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("debt_id", id).Error("Failed to delete debt")
		return fmt.Errorf("failed to delete debt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
