// Package verify recomputes candidate exponents independently of the
// incremental search. Suffix rebuilds a window by modular exponentiation
// and Full expands the power outright, so a reported hit can be
// confirmed by arithmetic that shares no state with the scanner.
package verify

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxFullExponent bounds Full. At this size 2^n already carries about
// forty million decimal digits.
const MaxFullExponent = 1 << 27

var (
	zero = decimal.NewFromInt(0)
	two  = decimal.NewFromInt(2)
	ten  = decimal.NewFromInt(10)
)

// Suffix computes the low width digits of 2^n and reports the window
// text along with the position of the first odd digit counted from the
// right, or -1 when every digit in the window is even.
func Suffix(n uint64, width int) (string, int, error) {
	if width < 1 {
		return "", 0, fmt.Errorf("window width %d must be positive", width)
	}
	mask := ten.Pow(decimal.NewFromInt(int64(width)))
	z := modPow(n, mask)
	text := z.String()
	if len(text) < width {
		text = strings.Repeat("0", width-len(text)) + text
	}
	return text, firstOdd(z), nil
}

// Full expands 2^n exactly and scans every digit. It reports the digit
// count and the position of the first odd digit from the right, or -1
// when the whole number has only even digits. A window that looks all
// even can still sit inside a number that is not, which is why
// confirmation reaches for this when the exponent is small enough.
func Full(n uint64) (int, int, error) {
	if n > MaxFullExponent {
		return 0, 0, fmt.Errorf("exponent %d too large to expand in full, limit is %d; check a window instead", n, MaxFullExponent)
	}
	text := new(big.Int).Lsh(big.NewInt(1), uint(n)).Text(10)
	for i := len(text) - 1; i >= 0; i-- {
		if (text[i]-'0')%2 == 1 {
			return len(text), len(text) - 1 - i, nil
		}
	}
	return len(text), -1, nil
}

// modPow returns 2^n mod mask by square and multiply, reducing both
// operands every round so nothing outgrows the window.
func modPow(n uint64, mask decimal.Decimal) decimal.Decimal {
	z := decimal.NewFromInt(1)
	m := two
	for n > 0 {
		if n%2 == 1 {
			z = z.Mul(m).Mod(mask)
		}
		n /= 2
		m = m.Mul(m).Mod(mask)
	}
	return z
}

// firstOdd returns the position of the lowest odd digit of z, counted
// from the right, or -1 if every digit is even. Digits beyond the length
// of z count as zero.
func firstOdd(z decimal.Decimal) int {
	for j, zdig := 0, z; zdig.GreaterThan(zero); j++ {
		var digit decimal.Decimal
		zdig, digit = zdig.QuoRem(ten, 0)
		if digit.IntPart()%2 != 0 {
			return j
		}
	}
	return -1
}
