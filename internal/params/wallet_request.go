package params

type CreateWalletRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Type    string  `json:"type" validate:"required,max=50"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

// WalletPatch enumerates the mutable wallet columns. Balance is deliberately
// patchable without recomputation; the caller owns the ledger invariant.
type WalletPatch struct {
	Type    *string  `json:"type,omitempty" validate:"omitempty,max=50"`
	Balance *float64 `json:"balance,omitempty"`
}

func (p *WalletPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Balance != nil {
		fields["balance"] = *p.Balance
	}
	return fields
}
