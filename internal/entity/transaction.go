package entity

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeInvest  TransactionType = "invest"
	TransactionTypeDebt    TransactionType = "debt"
)

// Transaction records a monetary event against a wallet. Only income and
// expense rows carry their own balance side effect; invest and debt rows are
// bookkeeping markers whose wallet effects are applied by the Investment and
// Debt entities.
type Transaction struct {
	ID          int64           `gorm:"primary_key;auto_increment" json:"id"`
	Wallet      string          `gorm:"type:varchar(100);not null;index" json:"wallet"`
	Category    string          `gorm:"type:varchar(100);not null;default:'None'" json:"category"`
	Type        TransactionType `gorm:"type:varchar(20);not null;check:type IN ('income','expense','invest','debt')" json:"type"`
	Amount      float64         `gorm:"type:decimal(15,2);not null;check:amount > 0" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Time        string          `gorm:"type:varchar(64)" json:"time"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
