package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainAccountPattern(t *testing.T) {
	valid := []string{"alice", "sellerstore", "eosio.token", "a", "store.12345"}
	for _, s := range valid {
		assert.True(t, chainAccountRe.MatchString(s), s)
	}

	invalid := []string{"", "Alice", "seller_store", "accountnametoolong", "store-1", "store 1", "acc6ount"}
	for _, s := range invalid {
		assert.False(t, chainAccountRe.MatchString(s), s)
	}
}

func TestReconKeyPattern(t *testing.T) {
	valid := []string{"ff", "deadBEEF", "1", "00000000000000000000000000000000000000000000000000000000000000ff"}
	for _, s := range valid {
		assert.True(t, reconKeyRe.MatchString(s), s)
	}

	invalid := []string{"", "0xff", "xyz", "f f", "00000000000000000000000000000000000000000000000000000000000000ff0"}
	for _, s := range invalid {
		assert.False(t, reconKeyRe.MatchString(s), s)
	}
}

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterAccountRequest{
		Name:     "  sellerstore  ",
		Password: "  pass1234  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "sellerstore", req.Name)
	assert.Equal(t, "pass1234", req.Password)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := DepositNoticeRequest{
		TransferID: "tx-1",
		From:       "buyerone",
		To:         "wookey",
		Quantity:   "5.0000 XPR",
		Memo:       "pay <script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Memo, "&lt;script&gt;")
	assert.NotContains(t, req.Memo, "<script>")
}

func TestSanitizeStruct_NonStructIsNoOp(t *testing.T) {
	s := "  untouched  "
	SanitizeStruct(&s)
	assert.Equal(t, "  untouched  ", s)
}
