package service

import (
	"testing"

	"wookey-escrow/internal/adapter/storage/memory"
	"wookey-escrow/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xprSymbol = domain.Symbol{Code: "XPR", Precision: 4}

func insertPayment(t *testing.T, tbl *memory.PaymentTable, reconHex string, status domain.PaymentStatus, symbol domain.Symbol, created int64) *domain.Payment {
	t.Helper()
	k, err := domain.ParseReconKey(reconHex)
	require.NoError(t, err)
	p := &domain.Payment{
		ID:            tbl.NextID(),
		SellerAccount: "sellerstore",
		BuyerAccount:  "buyerone",
		ReconKey:      k,
		Amount:        domain.Asset{Amount: 10000, Symbol: symbol},
		TokenContract: "eosio.token",
		Status:        status,
		Created:       created,
		Updated:       created,
	}
	require.NoError(t, tbl.Insert(p))
	return p
}

func TestPayoutReconciler_MarksFulfilledAfterWatermark(t *testing.T) {
	tbl := memory.NewPaymentTable()
	r := NewPayoutReconciler(tbl)

	before := insertPayment(t, tbl, "aa", domain.PaymentStatusFulfilled, xprSymbol, 500)
	after := insertPayment(t, tbl, "bb", domain.PaymentStatusFulfilled, xprSymbol, 1500)

	marked := r.MarkPaidOut("sellerstore", 1000, xprSymbol)
	require.Len(t, marked, 1)
	assert.Equal(t, after.ID, marked[0].ID)
	assert.Equal(t, domain.PaymentStatusPaidOut, after.Status)
	assert.Equal(t, domain.PaymentStatusFulfilled, before.Status)

	// Updated is set to the watermark, not the present time.
	assert.Equal(t, int64(1000), after.Updated)
}

func TestPayoutReconciler_SkipsOtherStatuses(t *testing.T) {
	tbl := memory.NewPaymentTable()
	r := NewPayoutReconciler(tbl)

	insertPayment(t, tbl, "aa", domain.PaymentStatusAwaiting, xprSymbol, 1500)
	insertPayment(t, tbl, "bb", domain.PaymentStatusCanceled, xprSymbol, 1500)
	insertPayment(t, tbl, "cc", domain.PaymentStatusRefunded, xprSymbol, 1500)
	insertPayment(t, tbl, "dd", domain.PaymentStatusPaidOut, xprSymbol, 1500)

	marked := r.MarkPaidOut("sellerstore", 1000, xprSymbol)
	assert.Empty(t, marked)
}

func TestPayoutReconciler_FiltersBySymbol(t *testing.T) {
	tbl := memory.NewPaymentTable()
	r := NewPayoutReconciler(tbl)

	other := domain.Symbol{Code: "FOOBAR", Precision: 2}
	xpr := insertPayment(t, tbl, "aa", domain.PaymentStatusFulfilled, xprSymbol, 1500)
	foo := insertPayment(t, tbl, "bb", domain.PaymentStatusFulfilled, other, 1500)

	marked := r.MarkPaidOut("sellerstore", 1000, xprSymbol)
	require.Len(t, marked, 1)
	assert.Equal(t, xpr.ID, marked[0].ID)
	assert.Equal(t, domain.PaymentStatusFulfilled, foo.Status)
}

func TestPayoutReconciler_OtherSellerUntouched(t *testing.T) {
	tbl := memory.NewPaymentTable()
	r := NewPayoutReconciler(tbl)

	insertPayment(t, tbl, "aa", domain.PaymentStatusFulfilled, xprSymbol, 1500)

	marked := r.MarkPaidOut("otherstore", 1000, xprSymbol)
	assert.Empty(t, marked)
}
