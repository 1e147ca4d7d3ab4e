package entity

import (
	"time"
)

type Investment struct {
	ID               int64     `gorm:"primary_key;auto_increment" json:"id"`
	AssetName        string    `gorm:"type:varchar(100);not null" json:"asset_name"`
	Type             string    `gorm:"type:varchar(50);not null" json:"type"`
	AmountInvested   float64   `gorm:"type:decimal(15,2);not null;check:amount_invested > 0" json:"amount_invested"`
	CurrentValue     float64   `gorm:"type:decimal(15,2);not null" json:"current_value"`
	Profit           float64   `gorm:"type:decimal(15,2);not null;default:0.00" json:"profit"`
	ProfitPercentage float64   `gorm:"type:decimal(8,4);not null;default:0.00" json:"profit_percentage"`
	StartDate        string    `gorm:"type:varchar(64)" json:"start_date"`
	FromWallet       string    `gorm:"type:varchar(100);not null;index" json:"from_wallet"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Investment) TableName() string {
	return "investments"
}
