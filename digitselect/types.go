// Package digitselect defines banks, selections, options and sentinel
// errors for order-preserving maximum digit selection.
package digitselect

import (
	"errors"
	"fmt"
)

// Sentinel errors for digitselect operations.
var (
	// ErrInvalidArgument indicates a non-positive k.
	ErrInvalidArgument = errors.New("digitselect: k must be positive")
	// ErrInvalidLength indicates k exceeds the bank length.
	ErrInvalidLength = errors.New("digitselect: k exceeds bank length")
	// ErrInvalidDigit indicates a bank element outside 0..9.
	ErrInvalidDigit = errors.New("digitselect: bank element is not a decimal digit")
	// ErrOverflow indicates a value or sum that does not fit in uint64.
	ErrOverflow = errors.New("digitselect: value overflows uint64")
	// ErrUnknownStrategy indicates an Options.Strategy outside the known set.
	ErrUnknownStrategy = errors.New("digitselect: unknown strategy")
)

// Bank is an ordered sequence of digit values. It is owned by the caller
// and never modified by this package.
type Bank []uint8

// Selection holds strictly increasing positions into a Bank.
type Selection []int

// Strategy selects the algorithm used by Select.
type Strategy int

const (
	// WindowScan rescans the feasible window once per output digit: O(n·k).
	WindowScan Strategy = iota
	// MonotonicStack keeps a non-increasing stack of positions: O(n).
	MonotonicStack
)

// String returns the flag-friendly name of s.
func (s Strategy) String() string {
	switch s {
	case WindowScan:
		return "window"
	case MonotonicStack:
		return "stack"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "window" or "stack" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "window":
		return WindowScan, nil
	case "stack":
		return MonotonicStack, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures Select and the aggregate helpers.
type Options struct {
	// Strategy chooses WindowScan or MonotonicStack.
	Strategy Strategy
}

// DefaultOptions returns Options with Strategy=WindowScan.
func DefaultOptions() Options {
	return Options{Strategy: WindowScan}
}

// BankError ties a per-bank failure to the bank's position in the input
// collection. It unwraps to the underlying sentinel.
type BankError struct {
	Index int
	Err   error
}

func (e *BankError) Error() string {
	return fmt.Sprintf("bank %d: %v", e.Index, e.Err)
}

func (e *BankError) Unwrap() error { return e.Err }
