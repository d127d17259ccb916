// Package digitselect picks k digits out of a bank of digits, keeping their
// original left-to-right order, so that the number they spell is as large
// as possible.
//
// What:
//
//   - Select returns the winning positions (a Selection) for one bank.
//   - SelectMax returns the numeric value of that Selection.
//   - SumOverBanks adds SelectMax results across many banks and tags any
//     failure with the index of the offending bank.
//
// How:
//
//	For every output position p in 0..k-1 the next digit must leave at
//	least k-p-1 digits after it, so it is drawn from the window
//	[start, len(bank)-(k-p-1)). The window is scanned left to right and the
//	running maximum is replaced only by a strictly greater digit, so the
//	leftmost of several equal maxima wins and the widest window remains for
//	later positions. start then moves just past the winner.
//
//	Example (k=2):
//	  bank   8 1 8 1 8 1 9 1 1 1 1 2 1 1 1
//	  p=0    window [0,14)  → 9 at index 6
//	  p=1    window [7,15)  → 2 at index 11
//	  value  92
//
// Strategies:
//
//   - WindowScan (default): the window scan above, O(n·k) time.
//   - MonotonicStack: single pass that pops smaller digits while drops
//     remain, O(n) time. Both yield the same digits.
//
// Complexity:
//
//   - Select:       O(n·k) or O(n) time, O(k) or O(n) memory.
//   - SumOverBanks: sum of the per-bank costs, O(1) extra memory.
//
// Errors:
//
//   - ErrInvalidArgument: k ≤ 0.
//   - ErrInvalidLength:   k > len(bank), including the empty bank.
//   - ErrInvalidDigit:    an element outside 0..9.
//   - ErrOverflow:        a value or running total does not fit in uint64.
//   - ErrUnknownStrategy: Options.Strategy is not a known value.
//
// A result may start with zero (bank 0 0 1, k=3 gives 1); it is not rejected.
package digitselect
