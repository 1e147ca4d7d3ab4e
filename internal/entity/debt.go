package entity

import (
	"time"
)

type Debt struct {
	ID           int64     `gorm:"primary_key;auto_increment" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Amount       float64   `gorm:"type:decimal(15,2);not null;check:amount > 0" json:"amount"`
	InterestRate float64   `gorm:"type:decimal(8,4);not null;default:0.00" json:"interest_rate"`
	StartDate    string    `gorm:"type:varchar(64)" json:"start_date"`
	DueDate      string    `gorm:"type:varchar(64)" json:"due_date"`
	ToWallet     string    `gorm:"type:varchar(100);not null;index" json:"to_wallet"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Debt) TableName() string {
	return "debts"
}
