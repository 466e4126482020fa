package memory

import "wookey-escrow/internal/core/domain"

// BalanceTable holds per-seller balance partitions. Each partition is an
// independent table keyed by symbol code, created lazily on first use.
type BalanceTable struct {
	partitions map[string]*Table[string, *domain.Balance]
}

// NewBalanceTable creates an empty balance table.
func NewBalanceTable() *BalanceTable {
	return &BalanceTable{partitions: make(map[string]*Table[string, *domain.Balance])}
}

func (t *BalanceTable) partition(seller string) *Table[string, *domain.Balance] {
	p, ok := t.partitions[seller]
	if !ok {
		p = NewTable[string, *domain.Balance]()
		t.partitions[seller] = p
	}
	return p
}

func (t *BalanceTable) Get(seller, symbolCode string) (*domain.Balance, error) {
	p, ok := t.partitions[seller]
	if !ok {
		return nil, ErrNotFound
	}
	return p.Get(symbolCode)
}

func (t *BalanceTable) Insert(seller string, b *domain.Balance) error {
	return t.partition(seller).Insert(b)
}

func (t *BalanceTable) Update(seller string, b *domain.Balance) error {
	p, ok := t.partitions[seller]
	if !ok {
		return ErrNotFound
	}
	return p.Update(b)
}

func (t *BalanceTable) Remove(seller, symbolCode string) error {
	p, ok := t.partitions[seller]
	if !ok {
		return ErrNotFound
	}
	return p.Remove(symbolCode)
}

func (t *BalanceTable) Exists(seller, symbolCode string) bool {
	p, ok := t.partitions[seller]
	return ok && p.Exists(symbolCode)
}

func (t *BalanceTable) First(seller string) (*domain.Balance, bool) {
	p, ok := t.partitions[seller]
	if !ok {
		return nil, false
	}
	return p.First()
}

// List returns the seller's balances ordered by symbol code.
func (t *BalanceTable) List(seller string) []*domain.Balance {
	p, ok := t.partitions[seller]
	if !ok {
		return nil
	}
	out := make([]*domain.Balance, 0, p.Len())
	for _, code := range p.Keys() {
		if b, err := p.Get(code); err == nil {
			out = append(out, b)
		}
	}
	return out
}

func (t *BalanceTable) Len(seller string) int {
	p, ok := t.partitions[seller]
	if !ok {
		return 0
	}
	return p.Len()
}
