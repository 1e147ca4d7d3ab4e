package params

import (
	"time"

	"go-finance-assistant/internal/entity"
)

type WalletResponse struct {
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewWalletResponse(w *entity.Wallet) *WalletResponse {
	return &WalletResponse{
		Name:      w.Name,
		Type:      w.Type,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

type TransactionResponse struct {
	ID          int64                  `json:"id"`
	Wallet      string                 `json:"wallet"`
	Category    string                 `json:"category"`
	Type        entity.TransactionType `json:"type"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description,omitempty"`
	Time        string                 `json:"time,omitempty"`
}

func NewTransactionResponse(t *entity.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Wallet:      t.Wallet,
		Category:    t.Category,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Time:        t.Time,
	}
}

type InvestmentResponse struct {
	ID               int64   `json:"id"`
	AssetName        string  `json:"asset_name"`
	Type             string  `json:"type"`
	AmountInvested   float64 `json:"amount_invested"`
	CurrentValue     float64 `json:"current_value"`
	Profit           float64 `json:"profit"`
	ProfitPercentage float64 `json:"profit_percentage"`
	StartDate        string  `json:"start_date,omitempty"`
	FromWallet       string  `json:"from_wallet"`
}

func NewInvestmentResponse(i *entity.Investment) *InvestmentResponse {
	return &InvestmentResponse{
		ID:               i.ID,
		AssetName:        i.AssetName,
		Type:             i.Type,
		AmountInvested:   i.AmountInvested,
		CurrentValue:     i.CurrentValue,
		Profit:           i.Profit,
		ProfitPercentage: i.ProfitPercentage,
		StartDate:        i.StartDate,
		FromWallet:       i.FromWallet,
	}
}

type DebtResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	StartDate    string  `json:"start_date,omitempty"`
	DueDate      string  `json:"due_date,omitempty"`
	ToWallet     string  `json:"to_wallet"`
}

func NewDebtResponse(d *entity.Debt) *DebtResponse {
	return &DebtResponse{
		ID:           d.ID,
		Name:         d.Name,
		Amount:       d.Amount,
		InterestRate: d.InterestRate,
		StartDate:    d.StartDate,
		DueDate:      d.DueDate,
		ToWallet:     d.ToWallet,
	}
}
