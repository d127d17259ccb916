// Package joltage picks the largest number that can be spelled by k digits
// of a digit sequence without reordering them, and sums such picks over
// many sequences.
//
// What is a bank?
//
//	A bank is an ordered run of digits, e.g. one line "818181911112111".
//	Switching on exactly k of its digits, left to right, produces a number;
//	the goal is the largest one. For k=2 the bank above yields 92, for k=12
//	it yields 888911112111.
//
// Layout:
//
//	digitselect/  — Select, SelectMax and SumOverBanks, with window-scan
//	                and monotonic-stack strategies
//	cmd/joltage/  — command that reads banks from a file and prints totals
//
// Quick example:
//
//	bank, _ := digitselect.ParseBank("811111111111119")
//	v, _ := digitselect.SelectMax(bank, 2) // 89
//
//	go get github.com/katalvlaran/joltage/digitselect
package joltage
