package accounting

import (
	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals returns the sum of debits and the sum of credits across the lines.
func Totals(lines []domain.JournalEntryLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}

// ValidateLines checks that a proposed entry can be posted. Checks run in order:
// at least one line, no negative amounts, then sum(debit) == sum(credit).
// Lines are identified by their 1-based input position.
func ValidateLines(lines []domain.JournalEntryLine) error {
	if len(lines) == 0 {
		return apperrors.Validation(apperrors.ErrEmptyEntry)
	}

	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return &apperrors.InvalidAmountError{
				Idx:     i + 1,
				Account: line.Account,
				Debit:   line.Debit,
				Credit:  line.Credit,
			}
		}
	}

	debits, credits := Totals(lines)
	if !debits.Equal(credits) {
		return &apperrors.UnbalancedEntryError{
			Debits:  debits,
			Credits: credits,
			Diff:    debits.Sub(credits),
		}
	}

	return nil
}
