package entity

import (
	"time"
)

type Wallet struct {
	Name      string    `gorm:"type:varchar(100);primary_key" json:"name"`
	Type      string    `gorm:"type:varchar(50);not null" json:"type"`
	Balance   float64   `gorm:"type:decimal(15,2);not null;default:0.00" json:"balance"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:Wallet;references:Name;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
}

func (Wallet) TableName() string {
	return "wallets"
}
