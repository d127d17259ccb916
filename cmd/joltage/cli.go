package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.ntppool.org/common/logger"

	"github.com/katalvlaran/joltage/digitselect"
)

// CLI is the kong command for joltage.
type CLI struct {
	File        string `arg:"" optional:"" default:"-" help:"Bank file, one bank per line ('-' reads stdin)"`
	Digits      []int  `short:"k" default:"2,12" env:"JOLTAGE_DIGITS" help:"Digits to select per bank; one total is printed per value"`
	Strategy    string `enum:"window,stack" default:"window" env:"JOLTAGE_STRATEGY" help:"Selection algorithm (${enum})"`
	SkipInvalid bool   `help:"Log and drop banks that cannot be used instead of failing"`
}

// record is a parsed bank and the 1-based input line it came from.
type record struct {
	line int
	bank digitselect.Bank
}

func (cli *CLI) Run(ctx context.Context) error {
	log := logger.Setup()

	in := io.Reader(os.Stdin)
	if cli.File != "-" {
		f, err := os.Open(cli.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return cli.run(ctx, in, os.Stdout, log)
}

func (cli *CLI) run(ctx context.Context, in io.Reader, out io.Writer, log *slog.Logger) error {
	strategy, err := digitselect.ParseStrategy(cli.Strategy)
	if err != nil {
		return err
	}
	opts := digitselect.Options{Strategy: strategy}

	recs, err := readBanks(ctx, in, cli.SkipInvalid, log)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "banks loaded", "count", len(recs), "strategy", strategy)

	for _, k := range cli.Digits {
		total, err := sumRecords(ctx, recs, k, opts, cli.SkipInvalid, log)
		if err != nil {
			return fmt.Errorf("k=%d: %w", k, err)
		}
		fmt.Fprintf(out, "k=%d total=%d\n", k, total)
	}

	return nil
}

// readBanks parses one bank per non-blank line.
func readBanks(ctx context.Context, in io.Reader, skip bool, log *slog.Logger) ([]record, error) {
	var (
		recs []record
		line int
	)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		bank, err := digitselect.ParseBank(text)
		if err != nil {
			if !skip {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			log.ErrorContext(ctx, "skipping unparsable line", "line", line, "err", err)
			continue
		}
		if len(bank) == 0 {
			continue
		}
		recs = append(recs, record{line: line, bank: bank})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}

// sumRecords aggregates recs for k. With skip set, a bank the selector
// rejects is logged and removed and the sum is retried; an overflowing
// total is never skipped.
func sumRecords(ctx context.Context, recs []record, k int, opts digitselect.Options, skip bool, log *slog.Logger) (uint64, error) {
	banks := make([]digitselect.Bank, len(recs))
	lines := make([]int, len(recs))
	for i, r := range recs {
		banks[i] = r.bank
		lines[i] = r.line
	}

	for {
		total, err := digitselect.SumOverBanksWith(banks, k, opts)
		if err == nil {
			return total, nil
		}

		var be *digitselect.BankError
		if !errors.As(err, &be) {
			return 0, err
		}
		if !skip || errors.Is(err, digitselect.ErrOverflow) || errors.Is(err, digitselect.ErrInvalidArgument) {
			return 0, fmt.Errorf("line %d: %w", lines[be.Index], be.Err)
		}

		log.ErrorContext(ctx, "skipping bank", "line", lines[be.Index], "k", k, "err", be.Err)
		banks = append(banks[:be.Index], banks[be.Index+1:]...)
		lines = append(lines[:be.Index], lines[be.Index+1:]...)
	}
}
