package memory

import (
	"slices"

	"wookey-escrow/internal/core/domain"
)

// PaymentTable is the payment store plus its two secondary indexes:
// a unique index on reconciliation key and a non-unique index on seller
// account kept in insertion order. The seller index is an explicit
// seller -> ordered payment-id mapping rather than a full-table rescan;
// iteration over it keeps the scan-until-exhausted semantics the payout
// reconciler depends on.
type PaymentTable struct {
	table      *Table[uint64, *domain.Payment]
	byReconKey map[domain.ReconKey]uint64
	bySeller   map[string][]uint64
	nextID     uint64
}

// NewPaymentTable creates an empty payment table.
func NewPaymentTable() *PaymentTable {
	return &PaymentTable{
		table:      NewTable[uint64, *domain.Payment](),
		byReconKey: make(map[domain.ReconKey]uint64),
		bySeller:   make(map[string][]uint64),
	}
}

// NextID returns the next sequence number, starting at 0 on an empty
// table. Sequence numbers are monotonic for the lifetime of the ledger
// and survive bulk clears, so an id is never reused.
func (t *PaymentTable) NextID() uint64 {
	id := t.nextID
	t.nextID++
	return id
}

// Insert stores a payment and maintains both secondary indexes.
// Fails with ErrDuplicateKey on a primary key or reconciliation key
// collision.
func (t *PaymentTable) Insert(p *domain.Payment) error {
	if _, taken := t.byReconKey[p.ReconKey]; taken {
		return ErrDuplicateKey
	}
	if err := t.table.Insert(p); err != nil {
		return err
	}
	t.byReconKey[p.ReconKey] = p.ID
	t.bySeller[p.SellerAccount] = append(t.bySeller[p.SellerAccount], p.ID)
	return nil
}

// Get returns the payment with the given sequence number.
func (t *PaymentTable) Get(id uint64) (*domain.Payment, error) {
	return t.table.Get(id)
}

// GetByReconKey returns the payment carrying the reconciliation key, or
// ErrNotFound. The index is unique: at most one live payment per key.
func (t *PaymentTable) GetByReconKey(k domain.ReconKey) (*domain.Payment, error) {
	id, ok := t.byReconKey[k]
	if !ok {
		return nil, ErrNotFound
	}
	return t.table.Get(id)
}

// FirstBySeller returns the seller's oldest payment in insertion order.
func (t *PaymentTable) FirstBySeller(seller string) (*domain.Payment, bool) {
	ids := t.bySeller[seller]
	if len(ids) == 0 {
		return nil, false
	}
	p, err := t.table.Get(ids[0])
	if err != nil {
		return nil, false
	}
	return p, true
}

// NextBySeller returns the successor of p in the seller index, or false
// at index exhaustion.
func (t *PaymentTable) NextBySeller(p *domain.Payment) (*domain.Payment, bool) {
	ids := t.bySeller[p.SellerAccount]
	i := slices.Index(ids, p.ID)
	if i < 0 || i+1 >= len(ids) {
		return nil, false
	}
	next, err := t.table.Get(ids[i+1])
	if err != nil {
		return nil, false
	}
	return next, true
}

// Update replaces the stored payment. The sequence number, seller, and
// reconciliation key of a payment never change after insertion, so the
// indexes need no maintenance here.
func (t *PaymentTable) Update(p *domain.Payment) error {
	return t.table.Update(p)
}

// Remove deletes a payment and its index entries.
func (t *PaymentTable) Remove(id uint64) error {
	p, err := t.table.Get(id)
	if err != nil {
		return err
	}
	if err := t.table.Remove(id); err != nil {
		return err
	}
	delete(t.byReconKey, p.ReconKey)
	ids := t.bySeller[p.SellerAccount]
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	}
	if len(ids) == 0 {
		delete(t.bySeller, p.SellerAccount)
	} else {
		t.bySeller[p.SellerAccount] = ids
	}
	return nil
}

// First returns the payment with the smallest sequence number.
func (t *PaymentTable) First() (*domain.Payment, bool) {
	return t.table.First()
}

// Len returns the number of stored payments.
func (t *PaymentTable) Len() int {
	return t.table.Len()
}
