package accounting

import (
	"testing"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(debit, credit int64) domain.JournalLine {
	return domain.JournalLine{AccountID: "acc", Debit: decimal.NewFromInt(debit), Credit: decimal.NewFromInt(credit)}
}

func TestCalculateSignedAmount(t *testing.T) {
	debit := line(100, 0)
	credit := line(0, 100)

	tests := []struct {
		name        string
		line        domain.JournalLine
		accountType domain.AccountType
		want        int64
	}{
		{"debit asset", debit, domain.Asset, 100},
		{"credit asset", credit, domain.Asset, -100},
		{"debit expense", debit, domain.Expense, 100},
		{"debit liability", debit, domain.Liability, -100},
		{"credit income", credit, domain.Income, 100},
		{"credit equity", credit, domain.Equity, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSignedAmount(tt.line, tt.accountType)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}

	_, err := CalculateSignedAmount(debit, domain.AccountType("OTHER"))
	assert.Error(t, err)
}

func TestValidateJournalBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
	}{
		{"balanced", []domain.JournalLine{line(1000, 0), line(0, 600), line(0, 400)}, false},
		{"single line", []domain.JournalLine{line(1000, 0)}, true},
		{"unbalanced", []domain.JournalLine{line(1000, 0), line(0, 900)}, true},
		{"both sides", []domain.JournalLine{line(100, 100), line(0, 0)}, true},
		{"empty line", []domain.JournalLine{line(100, 0), line(0, 0)}, true},
		{"negative", []domain.JournalLine{line(-100, 0), line(0, -100)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJournalBalance(tt.lines)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStraightLineDepreciation(t *testing.T) {
	cost := decimal.NewFromInt(1200000)
	acquired := time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC)

	first, err := StraightLineDepreciation(cost, decimal.Zero, 10, acquired, 2023)
	require.NoError(t, err)
	assert.Equal(t, 6, first.MonthsInYear)
	assert.True(t, decimal.NewFromInt(120000).Equal(first.Annual))
	assert.True(t, decimal.NewFromInt(60000).Equal(first.YearAmount))
	assert.True(t, decimal.NewFromInt(1140000).Equal(first.BookValueAtEnd))

	second, err := StraightLineDepreciation(cost, decimal.Zero, 10, acquired, 2024)
	require.NoError(t, err)
	assert.Equal(t, 12, second.MonthsInYear)
	assert.True(t, decimal.NewFromInt(120000).Equal(second.YearAmount))
	assert.True(t, decimal.NewFromInt(180000).Equal(second.AccumulatedAtEnd))

	before, err := StraightLineDepreciation(cost, decimal.Zero, 10, acquired, 2022)
	require.NoError(t, err)
	assert.Equal(t, 0, before.MonthsInYear)
	assert.True(t, before.YearAmount.IsZero())

	done, err := StraightLineDepreciation(cost, decimal.NewFromInt(200000), 2, acquired, 2030)
	require.NoError(t, err)
	assert.True(t, done.FullyDepreciated)
	assert.True(t, decimal.NewFromInt(1000000).Equal(done.AccumulatedAtEnd))
	assert.True(t, decimal.NewFromInt(200000).Equal(done.BookValueAtEnd))

	_, err = StraightLineDepreciation(cost, decimal.Zero, 0, acquired, 2024)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
