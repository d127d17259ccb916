package digitselect

import "fmt"

// Select chooses k positions of bank, in increasing order, whose digits
// form the largest possible k-digit number.
//
// Contract:
//   - 0 < k ≤ len(bank).
//   - every element of bank is in 0..9.
//   - bank is not modified; the returned Selection is freshly allocated.
//
// Validation happens before any scan, so on error no Selection is returned.
//
// Errors: ErrInvalidArgument, ErrInvalidLength, ErrInvalidDigit,
// ErrUnknownStrategy.
//
// Complexity: O(n·k) for WindowScan, O(n) for MonotonicStack.
func Select(bank Bank, k int, opts Options) (Selection, error) {
	if err := validate(bank, k); err != nil {
		return nil, err
	}

	switch opts.Strategy {
	case WindowScan:
		return selectWindowScan(bank, k), nil
	case MonotonicStack:
		return selectMonotonicStack(bank, k), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(opts.Strategy))
	}
}

// SelectMax returns the largest number formed by k order-preserving
// digits of bank, using DefaultOptions.
//
// Example:
//
//	v, err := SelectMax(Bank{8, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9}, 2)
//	// v == 89
func SelectMax(bank Bank, k int) (uint64, error) {
	return SelectMaxWith(bank, k, DefaultOptions())
}

// SelectMaxWith is SelectMax with explicit Options.
func SelectMaxWith(bank Bank, k int, opts Options) (uint64, error) {
	sel, err := Select(bank, k, opts)
	if err != nil {
		return 0, err
	}

	return sel.Value(bank)
}

// validate checks k against the bank and the bank's digits, in that order.
func validate(bank Bank, k int) error {
	if k <= 0 {
		return fmt.Errorf("%w: k=%d", ErrInvalidArgument, k)
	}
	if k > len(bank) {
		return fmt.Errorf("%w: k=%d, len=%d", ErrInvalidLength, k, len(bank))
	}

	return bank.Validate()
}

// selectWindowScan builds the Selection one output position at a time.
//
// For position p the winner must leave k-p-1 elements after it, so the
// candidates are [start, n-(k-p-1)). The maximum only moves on a strictly
// greater digit: among ties the leftmost index wins.
func selectWindowScan(bank Bank, k int) Selection {
	var (
		n     = len(bank)
		sel   = make(Selection, 0, k)
		start int
	)
	for pos := 0; pos < k; pos++ {
		remaining := k - pos - 1
		windowEnd := n - remaining

		best := start
		for i := start + 1; i < windowEnd; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		sel = append(sel, best)
		start = best + 1
	}

	return sel
}

// selectMonotonicStack discards n-k digits in a single pass. A stacked
// position is popped only when a strictly greater digit arrives and drops
// remain, so equal digits keep their earliest positions. Whatever the pass
// leaves beyond k entries is a non-increasing tail and is cut.
func selectMonotonicStack(bank Bank, k int) Selection {
	var (
		drops = len(bank) - k
		stack = make(Selection, 0, len(bank))
	)
	for i, d := range bank {
		for drops > 0 && len(stack) > 0 && bank[stack[len(stack)-1]] < d {
			stack = stack[:len(stack)-1]
			drops--
		}
		stack = append(stack, i)
	}

	return stack[:k:k]
}
