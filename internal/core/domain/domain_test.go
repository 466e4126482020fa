package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAsset(t *testing.T) {
	tests := []struct {
		in        string
		amount    int64
		code      string
		precision uint8
	}{
		{"5.0000 XPR", 50000, "XPR", 4},
		{"0.0001 XPR", 1, "XPR", 4},
		{"12 FOOBAR", 12, "FOOBAR", 0},
		{"-3.50 USD", -350, "USD", 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := ParseAsset(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.amount, a.Amount)
			assert.Equal(t, tt.code, a.Symbol.Code)
			assert.Equal(t, tt.precision, a.Symbol.Precision)
		})
	}
}

func TestParseAsset_Invalid(t *testing.T) {
	for _, in := range []string{"", "XPR", "5.0000", "5.0000 xpr", "abc XPR", "1.0 TOOLONGSYM"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAsset(in)
			assert.Error(t, err)
		})
	}
}

func TestParseAsset_AmountBounds(t *testing.T) {
	// Largest int64 in base units parses exactly.
	a, err := ParseAsset("922337203685477.5807 XPR")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), a.Amount)

	// One past the int64 range is rejected rather than wrapped.
	_, err = ParseAsset("922337203685477.5808 XPR")
	assert.Error(t, err)

	_, err = ParseAsset("99999999999999999999 XPR")
	assert.Error(t, err)
}

func TestAsset_StringRoundTrip(t *testing.T) {
	a := Asset{Amount: 50000, Symbol: Symbol{Code: "XPR", Precision: 4}}
	assert.Equal(t, "5.0000 XPR", a.String())

	parsed, err := ParseAsset(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

func TestAsset_StringNegative(t *testing.T) {
	a := Asset{Amount: -50000, Symbol: Symbol{Code: "XPR", Precision: 4}}
	assert.Equal(t, "-5.0000 XPR", a.String())
}

func TestParseReconKey(t *testing.T) {
	k, err := ParseReconKey("01")
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), k[31])
	assert.Equal(t, strings.Repeat("0", 62)+"01", k.String())
}

func TestParseReconKey_FullWidth(t *testing.T) {
	full := strings.Repeat("ab", 32)
	k, err := ParseReconKey(full)
	require.NoError(t, err)
	assert.Equal(t, full, k.String())
}

func TestParseReconKey_OddLength(t *testing.T) {
	k, err := ParseReconKey("fff")
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), k[30])
	assert.Equal(t, byte(0xff), k[31])
}

func TestParseReconKey_Invalid(t *testing.T) {
	_, err := ParseReconKey("")
	assert.Error(t, err)

	_, err = ParseReconKey("zz")
	assert.Error(t, err)

	_, err = ParseReconKey(strings.Repeat("ff", 33))
	assert.Error(t, err)
}

func TestPayment_CanFulfill(t *testing.T) {
	p := &Payment{Status: PaymentStatusAwaiting}
	assert.True(t, p.CanFulfill())

	p.Status = PaymentStatusCanceled
	assert.False(t, p.CanFulfill())

	p.Status = PaymentStatusFulfilled
	assert.False(t, p.CanFulfill())
}

func TestPayment_IsTerminal(t *testing.T) {
	for status, terminal := range map[PaymentStatus]bool{
		PaymentStatusAwaiting:  false,
		PaymentStatusFulfilled: false,
		PaymentStatusCanceled:  true,
		PaymentStatusPaidOut:   true,
		PaymentStatusRefunded:  true,
	} {
		p := &Payment{Status: status}
		assert.Equal(t, terminal, p.IsTerminal(), "status %s", status)
	}
}

func TestAccount_Roles(t *testing.T) {
	a := &Account{Role: AccountRoleMember, Status: AccountStatusActive}
	assert.True(t, a.IsActive())
	assert.False(t, a.IsAdmin())

	a.Role = AccountRoleAdmin
	a.Status = AccountStatusSuspended
	assert.True(t, a.IsAdmin())
	assert.False(t, a.IsActive())
}
