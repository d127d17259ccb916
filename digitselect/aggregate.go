package digitselect

import (
	"fmt"
	"math/bits"
)

// SumOverBanks adds SelectMax(bank, k) over all banks using DefaultOptions.
//
// The first failing bank stops the sum; its error is returned as a
// *BankError carrying the bank's index, so callers can errors.As it to
// report the input record and errors.Is it against the sentinels.
// An empty collection sums to 0.
//
// Example:
//
//	total, err := SumOverBanks(banks, 12)
//	var be *BankError
//	if errors.As(err, &be) {
//	  // banks[be.Index] is malformed
//	}
func SumOverBanks(banks []Bank, k int) (uint64, error) {
	return SumOverBanksWith(banks, k, DefaultOptions())
}

// SumOverBanksWith is SumOverBanks with explicit Options.
//
// Errors: *BankError wrapping any Select error, or ErrOverflow when the
// running total exceeds math.MaxUint64.
func SumOverBanksWith(banks []Bank, k int, opts Options) (uint64, error) {
	var total uint64
	for i, bank := range banks {
		v, err := SelectMaxWith(bank, k, opts)
		if err != nil {
			return 0, &BankError{Index: i, Err: err}
		}

		var carry uint64
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, &BankError{Index: i, Err: fmt.Errorf("%w: running total", ErrOverflow)}
		}
	}

	return total, nil
}
