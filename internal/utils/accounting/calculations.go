package accounting

import (
	"fmt"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the effect of a journal line on its account balance.
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	net := line.Debit.Sub(line.Credit)
	switch accountType {
	case domain.Asset, domain.Expense:
		return net, nil
	case domain.Liability, domain.Equity, domain.Income:
		return net.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
}

// ValidateJournalBalance checks that an entry has at least two lines, that every line
// carries exactly one positive side and that total debits equal total credits.
func ValidateJournalBalance(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		if line.Debit.IsPositive() == line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d must have either a debit or a credit", apperrors.ErrValidation, i+1)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		return fmt.Errorf("%w: debits (%s) and credits (%s) do not balance", apperrors.ErrValidation, totalDebit.String(), totalCredit.String())
	}
	return nil
}

// Depreciation is the straight-line depreciation of an asset evaluated for one calendar year.
type Depreciation struct {
	Annual           decimal.Decimal
	MonthsInYear     int
	YearAmount       decimal.Decimal
	AccumulatedAtEnd decimal.Decimal
	BookValueAtEnd   decimal.Decimal
	FullyDepreciated bool
}

// StraightLineDepreciation depreciates (cost - residual) evenly over usefulLifeYears*12 months,
// starting in the acquisition month. Amounts are rounded to whole pesos; the accumulated value
// reaches exactly cost - residual at the end of the useful life.
func StraightLineDepreciation(cost, residual decimal.Decimal, usefulLifeYears int, acquired time.Time, year int) (Depreciation, error) {
	if usefulLifeYears <= 0 {
		return Depreciation{}, fmt.Errorf("%w: useful life must be positive", apperrors.ErrValidation)
	}
	if residual.GreaterThan(cost) {
		return Depreciation{}, fmt.Errorf("%w: residual value exceeds acquisition value", apperrors.ErrValidation)
	}

	depreciable := cost.Sub(residual)
	totalMonths := usefulLifeYears * 12
	start := acquired.Year()*12 + int(acquired.Month()) - 1

	elapsedAtStart := clamp(year*12-start, 0, totalMonths)
	elapsedAtEnd := clamp((year+1)*12-start, 0, totalMonths)

	accumulatedAt := func(months int) decimal.Decimal {
		return depreciable.Mul(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(int64(totalMonths))).Round(0)
	}
	accStart := accumulatedAt(elapsedAtStart)
	accEnd := accumulatedAt(elapsedAtEnd)

	return Depreciation{
		Annual:           depreciable.Div(decimal.NewFromInt(int64(usefulLifeYears))).Round(0),
		MonthsInYear:     elapsedAtEnd - elapsedAtStart,
		YearAmount:       accEnd.Sub(accStart),
		AccumulatedAtEnd: accEnd,
		BookValueAtEnd:   cost.Sub(accEnd),
		FullyDepreciated: elapsedAtEnd == totalMonths,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
