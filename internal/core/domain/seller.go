package domain

// Seller is a registered store account. Sellers self-register and
// self-unregister; every payment and balance operation requires the
// seller to be currently registered.
type Seller struct {
	Account string `json:"account"`
	// Blacklisted is reserved; no transition consults it yet.
	Blacklisted  bool  `json:"blacklisted"`
	RegisteredAt int64 `json:"registered_at"` // unix millis
}

// PrimaryKey implements the entity store record capability.
func (s *Seller) PrimaryKey() string { return s.Account }
