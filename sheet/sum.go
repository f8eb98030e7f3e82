package sheet

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ParseInteger converts a cell value to an integer when the value is
// integer-like: non-empty and a finite number with no fractional part once
// surrounding whitespace is trimmed.
//
// Accepted forms: decimal integers with optional sign ("-1", "+7"),
// decimals with a zero fraction ("1.0"), exponent forms ("1e3"), and
// unsigned radix literals ("0x1f", "0o17", "0b101"). A whitespace-only value
// converts to 0.
func ParseInteger(v string) (*big.Int, bool) {
	if v == "" {
		return nil, false
	}
	s := strings.TrimSpace(v)
	if s == "" {
		return big.NewInt(0), true
	}
	if n, ok := parseRadixLiteral(s); ok {
		return n, true
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n, true
	}
	if strings.ContainsAny(s, "xX_") {
		// ParseFloat accepts hex floats and underscores; cell values do not.
		return nil, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}
	if f != math.Trunc(f) {
		return nil, false
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n, true
}

// IsIntegerLike reports whether v contributes to a column sum.
func IsIntegerLike(v string) bool {
	_, ok := ParseInteger(v)
	return ok
}

func parseRadixLiteral(s string) (*big.Int, bool) {
	if len(s) < 3 || s[0] != '0' {
		return nil, false
	}
	base := 0
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return nil, false
	}
	digits := s[2:]
	if digits[0] == '+' || digits[0] == '-' {
		return nil, false
	}
	return new(big.Int).SetString(digits, base)
}

// ColumnSum returns the sum of every integer-like value in col.
//
// ok is false when no cell in the column qualified; that is distinct from a
// zero sum of qualifying values. Absent cells and values that are not
// integer-like are skipped. The result is computed from the current cells
// on every call.
func (s *Sheet) ColumnSum(col int) (sum *big.Int, ok bool) {
	if col < 0 || col >= s.size.Cols {
		return nil, false
	}
	sum = new(big.Int)
	for _, v := range s.Column(col) {
		n, isInt := ParseInteger(v)
		if !isInt {
			continue
		}
		sum.Add(sum, n)
		ok = true
	}
	if !ok {
		return nil, false
	}
	return sum, true
}

// SumLabel renders ColumnSum for display: "" for no value, otherwise the
// base-10 sum ("0", "15", "-15").
func (s *Sheet) SumLabel(col int) string {
	sum, ok := s.ColumnSum(col)
	if !ok {
		return ""
	}
	return sum.String()
}
