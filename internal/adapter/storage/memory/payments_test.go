package memory

import (
	"testing"

	"wookey-escrow/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(b byte) domain.ReconKey {
	var k domain.ReconKey
	k[31] = b
	return k
}

func payment(t *testing.T, tbl *PaymentTable, seller string, b byte) *domain.Payment {
	t.Helper()
	p := &domain.Payment{
		ID:            tbl.NextID(),
		SellerAccount: seller,
		BuyerAccount:  "buyer",
		ReconKey:      key(b),
		Amount:        domain.Asset{Amount: 50000, Symbol: domain.Symbol{Code: "XPR", Precision: 4}},
		TokenContract: "eosio.token",
		Status:        domain.PaymentStatusAwaiting,
		Created:       1000,
		Updated:       1000,
	}
	require.NoError(t, tbl.Insert(p))
	return p
}

func TestPaymentTable_SequenceNumbersNeverReused(t *testing.T) {
	tbl := NewPaymentTable()

	p1 := payment(t, tbl, "woowstore", 1)
	assert.Equal(t, uint64(0), p1.ID, "first sequence number is zero")

	require.NoError(t, tbl.Remove(p1.ID))
	assert.Equal(t, 0, tbl.Len())

	p2 := payment(t, tbl, "woowstore", 2)
	assert.Equal(t, uint64(1), p2.ID, "sequence numbers survive removal")
}

func TestPaymentTable_ReconKeyUnique(t *testing.T) {
	tbl := NewPaymentTable()
	payment(t, tbl, "woowstore", 1)

	dup := &domain.Payment{
		ID:            tbl.NextID(),
		SellerAccount: "otherstore",
		ReconKey:      key(1),
		Status:        domain.PaymentStatusAwaiting,
	}
	assert.ErrorIs(t, tbl.Insert(dup), ErrDuplicateKey)
	assert.Equal(t, 1, tbl.Len())
}

func TestPaymentTable_GetByReconKey(t *testing.T) {
	tbl := NewPaymentTable()
	p := payment(t, tbl, "woowstore", 7)

	got, err := tbl.GetByReconKey(key(7))
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = tbl.GetByReconKey(key(8))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentTable_SellerIndexInsertionOrder(t *testing.T) {
	tbl := NewPaymentTable()
	p1 := payment(t, tbl, "woowstore", 1)
	payment(t, tbl, "otherstore", 2)
	p3 := payment(t, tbl, "woowstore", 3)
	p4 := payment(t, tbl, "woowstore", 4)

	got, ok := tbl.FirstBySeller("woowstore")
	require.True(t, ok)
	assert.Equal(t, p1.ID, got.ID)

	got, ok = tbl.NextBySeller(got)
	require.True(t, ok)
	assert.Equal(t, p3.ID, got.ID)

	got, ok = tbl.NextBySeller(got)
	require.True(t, ok)
	assert.Equal(t, p4.ID, got.ID)

	_, ok = tbl.NextBySeller(got)
	assert.False(t, ok, "index exhausted")
}

func TestPaymentTable_FirstBySellerEmpty(t *testing.T) {
	tbl := NewPaymentTable()
	_, ok := tbl.FirstBySeller("nobody")
	assert.False(t, ok)
}

func TestPaymentTable_RemoveMaintainsIndexes(t *testing.T) {
	tbl := NewPaymentTable()
	p1 := payment(t, tbl, "woowstore", 1)
	p2 := payment(t, tbl, "woowstore", 2)

	require.NoError(t, tbl.Remove(p1.ID))

	_, err := tbl.GetByReconKey(key(1))
	assert.ErrorIs(t, err, ErrNotFound, "recon index entry removed")

	got, ok := tbl.FirstBySeller("woowstore")
	require.True(t, ok)
	assert.Equal(t, p2.ID, got.ID)

	// Key freed by removal can be assigned to a new payment.
	p3 := &domain.Payment{ID: tbl.NextID(), SellerAccount: "woowstore", ReconKey: key(1)}
	assert.NoError(t, tbl.Insert(p3))
}

func TestPaymentTable_DrainViaFirst(t *testing.T) {
	tbl := NewPaymentTable()
	for b := byte(1); b <= 5; b++ {
		payment(t, tbl, "woowstore", b)
	}

	for {
		p, ok := tbl.First()
		if !ok {
			break
		}
		require.NoError(t, tbl.Remove(p.ID))
	}

	assert.Equal(t, 0, tbl.Len())
	_, ok := tbl.FirstBySeller("woowstore")
	assert.False(t, ok, "seller index drained")
	_, err := tbl.GetByReconKey(key(3))
	assert.ErrorIs(t, err, ErrNotFound, "recon index drained")
}

func TestBalanceTable_PartitionsIndependent(t *testing.T) {
	tbl := NewBalanceTable()
	xpr := domain.Symbol{Code: "XPR", Precision: 4}

	require.NoError(t, tbl.Insert("alice", &domain.Balance{Symbol: xpr, TokenContract: "eosio.token", Amount: 100}))
	require.NoError(t, tbl.Insert("bob", &domain.Balance{Symbol: xpr, TokenContract: "eosio.token", Amount: 200}))

	a, err := tbl.Get("alice", "XPR")
	require.NoError(t, err)
	assert.Equal(t, int64(100), a.Amount)

	b, err := tbl.Get("bob", "XPR")
	require.NoError(t, err)
	assert.Equal(t, int64(200), b.Amount)

	_, err = tbl.Get("carol", "XPR")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1, tbl.Len("alice"))
	assert.False(t, tbl.Exists("alice", "USD"))
}

func TestBalanceTable_ListOrdered(t *testing.T) {
	tbl := NewBalanceTable()
	require.NoError(t, tbl.Insert("alice", &domain.Balance{Symbol: domain.Symbol{Code: "XPR", Precision: 4}}))
	require.NoError(t, tbl.Insert("alice", &domain.Balance{Symbol: domain.Symbol{Code: "FOO", Precision: 4}}))

	list := tbl.List("alice")
	require.Len(t, list, 2)
	assert.Equal(t, "FOO", list[0].Symbol.Code)
	assert.Equal(t, "XPR", list[1].Symbol.Code)
}
