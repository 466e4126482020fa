package domain

// Balance is a seller's accrued claimable amount for one token symbol.
// Balances live in per-seller partitions keyed by symbol code; they are
// created lazily on the first confirmed deposit for that seller/symbol
// pair, credited on fulfillment, zeroed on claim, and debited on refund.
type Balance struct {
	Symbol        Symbol `json:"symbol"`
	TokenContract string `json:"token_contract"`
	Amount        int64  `json:"amount"`     // base units
	LastClaim     int64  `json:"last_claim"` // unix millis of the previous claim
}

// PrimaryKey implements the entity store record capability.
func (b *Balance) PrimaryKey() string { return b.Symbol.Code }

// Accrued returns the balance as an asset quantity.
func (b *Balance) Accrued() Asset {
	return Asset{Amount: b.Amount, Symbol: b.Symbol}
}
