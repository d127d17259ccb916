package digitselect_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/joltage/digitselect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleBanks = []string{
	"987654321111111",
	"811111111111119",
	"234234234234278",
	"818181911112111",
}

func sample(t testing.TB) []digitselect.Bank {
	t.Helper()
	banks := make([]digitselect.Bank, len(sampleBanks))
	for i, s := range sampleBanks {
		banks[i] = mustBank(t, s)
	}

	return banks
}

// TestSumOverBanks checks the aggregated totals for k=2 and k=12.
func TestSumOverBanks(t *testing.T) {
	banks := sample(t)
	for _, s := range strategies {
		opts := digitselect.Options{Strategy: s}

		total, err := digitselect.SumOverBanksWith(banks, 2, opts)
		require.NoError(t, err)
		assert.Equal(t, uint64(357), total, "strategy %s", s)

		total, err = digitselect.SumOverBanksWith(banks, 12, opts)
		require.NoError(t, err)
		assert.Equal(t, uint64(3121910778619), total, "strategy %s", s)
	}

	total, err := digitselect.SumOverBanks(banks, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(357), total)
}

// TestSumOverBanks_Empty sums nothing to zero.
func TestSumOverBanks_Empty(t *testing.T) {
	total, err := digitselect.SumOverBanks(nil, 2)
	require.NoError(t, err)
	assert.Zero(t, total)
}

// TestSumOverBanks_BankError verifies the failing bank's index is attached
// and the sentinel is still reachable.
func TestSumOverBanks_BankError(t *testing.T) {
	banks := sample(t)
	banks = append(banks[:2:2], digitselect.Bank{1, 2, 3}, banks[2])

	_, err := digitselect.SumOverBanks(banks, 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, digitselect.ErrInvalidLength)

	var be *digitselect.BankError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 2, be.Index)
	assert.Contains(t, err.Error(), "bank 2:")

	_, err = digitselect.SumOverBanks(banks, 0)
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 0, be.Index)
	assert.ErrorIs(t, err, digitselect.ErrInvalidArgument)

	_, err = digitselect.SumOverBanks([]digitselect.Bank{{1, 1}, {3, 11}}, 2)
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 1, be.Index)
	assert.ErrorIs(t, err, digitselect.ErrInvalidDigit)
}

// TestSumOverBanks_Overflow detects a running total past MaxUint64.
func TestSumOverBanks_Overflow(t *testing.T) {
	nines := mustBank(t, "9999999999999999999")
	_, err := digitselect.SumOverBanks([]digitselect.Bank{nines, nines}, 19)
	assert.ErrorIs(t, err, digitselect.ErrOverflow)

	var be *digitselect.BankError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 1, be.Index)
}
