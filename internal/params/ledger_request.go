package params

type CreateTransactionRequest struct {
	Wallet      string  `json:"wallet" validate:"required,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"max=100"`
	Type        string  `json:"type" validate:"required,oneof=income expense invest debt"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	Time        string  `json:"time,omitempty" validate:"max=64"`
}

type TransactionPatch struct {
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=income expense invest debt"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Time        *string  `json:"time,omitempty" validate:"omitempty,max=64"`
}

func (p *TransactionPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Amount != nil {
		fields["amount"] = *p.Amount
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Time != nil {
		fields["time"] = *p.Time
	}
	return fields
}

type CreateInvestmentRequest struct {
	AssetName      string  `json:"asset_name" validate:"required,max=100"`
	Type           string  `json:"type" validate:"required,max=50"`
	AmountInvested float64 `json:"amount_invested" validate:"required,gt=0"`
	FromWallet     string  `json:"from_wallet" validate:"required,max=100"`
	StartDate      string  `json:"start_date,omitempty" validate:"max=64"`
}

type InvestmentPatch struct {
	AssetName        *string  `json:"asset_name,omitempty" validate:"omitempty,max=100"`
	Type             *string  `json:"type,omitempty" validate:"omitempty,max=50"`
	CurrentValue     *float64 `json:"current_value,omitempty"`
	Profit           *float64 `json:"profit,omitempty"`
	ProfitPercentage *float64 `json:"profit_percentage,omitempty"`
	StartDate        *string  `json:"start_date,omitempty" validate:"omitempty,max=64"`
}

func (p *InvestmentPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.AssetName != nil {
		fields["asset_name"] = *p.AssetName
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.CurrentValue != nil {
		fields["current_value"] = *p.CurrentValue
	}
	if p.Profit != nil {
		fields["profit"] = *p.Profit
	}
	if p.ProfitPercentage != nil {
		fields["profit_percentage"] = *p.ProfitPercentage
	}
	if p.StartDate != nil {
		fields["start_date"] = *p.StartDate
	}
	return fields
}

type CreateDebtRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	ToWallet     string  `json:"to_wallet" validate:"required,max=100"`
	StartDate    string  `json:"start_date,omitempty" validate:"max=64"`
	DueDate      string  `json:"due_date,omitempty" validate:"max=64"`
}

type DebtPatch struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	InterestRate *float64 `json:"interest_rate,omitempty" validate:"omitempty,gte=0"`
	StartDate    *string  `json:"start_date,omitempty" validate:"omitempty,max=64"`
	DueDate      *string  `json:"due_date,omitempty" validate:"omitempty,max=64"`
}

func (p *DebtPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.InterestRate != nil {
		fields["interest_rate"] = *p.InterestRate
	}
	if p.StartDate != nil {
		fields["start_date"] = *p.StartDate
	}
	if p.DueDate != nil {
		fields["due_date"] = *p.DueDate
	}
	return fields
}
