package domain

import (
	"encoding/hex"
	"fmt"
)

// ReconKey is the opaque 256-bit reconciliation key a buyer attaches to a
// payment request off-chain (typically a hash of an invoice) and later to
// the deposit memo. It correlates an on-ledger deposit with a payment; it
// is not a foreign key into any other store.
type ReconKey [32]byte

// ParseReconKey decodes a hex string into a ReconKey. Shorter values are
// interpreted big-endian and left-padded to 256 bits, matching how deposit
// memos are decoded on chain.
func ParseReconKey(s string) (ReconKey, error) {
	var k ReconKey
	if s == "" {
		return k, fmt.Errorf("empty reconciliation key")
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("invalid reconciliation key hex: %w", err)
	}
	if len(raw) > 32 {
		return k, fmt.Errorf("reconciliation key longer than 256 bits")
	}
	copy(k[32-len(raw):], raw)
	return k, nil
}

// String returns the full 64-character lowercase hex form.
func (k ReconKey) String() string {
	return hex.EncodeToString(k[:])
}

// IsZero reports whether the key is all zeroes.
func (k ReconKey) IsZero() bool {
	return k == ReconKey{}
}
