package digitselect

import (
	"fmt"
	"math/bits"
	"strings"
)

// ParseBank converts a line of ASCII digits into a Bank.
// Leading and trailing ASCII whitespace is ignored; any other non-digit
// byte yields ErrInvalidDigit with its byte offset in the trimmed text.
//
// Complexity: O(len(s)).
func ParseBank(s string) (Bank, error) {
	s = strings.TrimSpace(s)
	b := make(Bank, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, c, i)
		}
		b[i] = c - '0'
	}

	return b, nil
}

// Validate reports the first element outside 0..9.
func (b Bank) Validate() error {
	for i, d := range b {
		if d > 9 {
			return fmt.Errorf("%w: %d at position %d", ErrInvalidDigit, d, i)
		}
	}

	return nil
}

// String renders the bank as its digit text, e.g. "818181911112111".
// Elements outside 0..9 are rendered as '?'.
func (b Bank) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, d := range b {
		if d > 9 {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte('0' + d)
	}

	return sb.String()
}

// Digits returns the digits of b at the positions in s, in order.
func (s Selection) Digits(b Bank) []uint8 {
	out := make([]uint8, len(s))
	for i, idx := range s {
		out[i] = b[idx]
	}

	return out
}

// Value reads the selected digits of b as a base-10 number.
// A leading zero is allowed and simply contributes nothing.
//
// Errors: ErrOverflow when the number exceeds math.MaxUint64.
func (s Selection) Value(b Bank) (uint64, error) {
	var v uint64
	for _, idx := range s {
		hi, lo := bits.Mul64(v, 10)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d selected digits", ErrOverflow, len(s))
		}
		sum, carry := bits.Add64(lo, uint64(b[idx]), 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: %d selected digits", ErrOverflow, len(s))
		}
		v = sum
	}

	return v, nil
}
