package memory

import "wookey-escrow/internal/core/domain"

// SellerTable is the store registry table, keyed by account handle.
type SellerTable struct {
	table *Table[string, *domain.Seller]
}

// NewSellerTable creates an empty seller table.
func NewSellerTable() *SellerTable {
	return &SellerTable{table: NewTable[string, *domain.Seller]()}
}

func (t *SellerTable) Insert(s *domain.Seller) error {
	return t.table.Insert(s)
}

func (t *SellerTable) Get(account string) (*domain.Seller, error) {
	return t.table.Get(account)
}

func (t *SellerTable) Remove(account string) error {
	return t.table.Remove(account)
}

func (t *SellerTable) Exists(account string) bool {
	return t.table.Exists(account)
}

func (t *SellerTable) First() (*domain.Seller, bool) {
	return t.table.First()
}

func (t *SellerTable) Len() int {
	return t.table.Len()
}

// List returns the registered sellers ordered by account handle.
func (t *SellerTable) List() []*domain.Seller {
	out := make([]*domain.Seller, 0, t.table.Len())
	for _, account := range t.table.Keys() {
		if s, err := t.table.Get(account); err == nil {
			out = append(out, s)
		}
	}
	return out
}
