package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbol identifies a token: a short uppercase code plus the number of
// decimal places its amounts carry (e.g. XPR has precision 4, so
// "5.0000 XPR" is 50000 base units).
type Symbol struct {
	Code      string `json:"code"`
	Precision uint8  `json:"precision"`
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// Asset is a token quantity: an integer amount of base units plus its symbol.
type Asset struct {
	Amount int64  `json:"amount"`
	Symbol Symbol `json:"symbol"`
}

// String renders the asset in chain notation, e.g. "5.0000 XPR".
func (a Asset) String() string {
	if a.Symbol.Precision == 0 {
		return fmt.Sprintf("%d %s", a.Amount, a.Symbol.Code)
	}

	div := pow10(a.Symbol.Precision)
	sign := ""
	amount := a.Amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%0*d %s", sign, amount/div, int(a.Symbol.Precision), amount%div, a.Symbol.Code)
}

// ParseAsset parses chain notation ("5.0000 XPR") into an Asset.
// Precision is taken from the number of fractional digits.
func ParseAsset(s string) (Asset, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return Asset{}, fmt.Errorf("invalid asset %q: want \"<amount> <symbol>\"", s)
	}

	code := parts[1]
	if !isSymbolCode(code) {
		return Asset{}, fmt.Errorf("invalid symbol code %q", code)
	}

	numeric := parts[0]
	neg := strings.HasPrefix(numeric, "-")
	numeric = strings.TrimPrefix(numeric, "-")

	whole, frac, _ := strings.Cut(numeric, ".")
	if whole == "" || !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return Asset{}, fmt.Errorf("invalid asset amount %q", parts[0])
	}
	if len(frac) > 18 {
		return Asset{}, fmt.Errorf("asset precision %d too large", len(frac))
	}

	amount, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return Asset{}, fmt.Errorf("asset amount %q out of range", parts[0])
	}
	if neg {
		amount = -amount
	}

	return Asset{
		Amount: amount,
		Symbol: Symbol{Code: code, Precision: uint8(len(frac))},
	}, nil
}

func isSymbolCode(s string) bool {
	if len(s) == 0 || len(s) > 7 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func pow10(p uint8) int64 {
	n := int64(1)
	for i := uint8(0); i < p; i++ {
		n *= 10
	}
	return n
}
