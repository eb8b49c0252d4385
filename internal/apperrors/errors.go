package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Posting errors. Validation errors are detected before any store transaction is opened;
// the rest are raised from inside the transaction and always cause a rollback.
var (
	ErrEmptyEntry          = errors.New("journal entry has no lines")
	ErrInvalidAmount       = errors.New("line amount must not be negative")
	ErrUnbalancedEntry     = errors.New("journal entry debits and credits do not balance")
	ErrDuplicateEntry      = errors.New("journal entry already exists")
	ErrDuplicateIdentifier = errors.New("generated identifier already exists")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrConstraintViolation = errors.New("store constraint violation")
)

// InvalidAmountError reports the first line carrying a negative debit or credit.
type InvalidAmountError struct {
	Idx     int
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: line %d (account %q) has debit %s and credit %s",
		ErrInvalidAmount.Error(), e.Idx, e.Account, e.Debit.String(), e.Credit.String())
}

func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount || target == ErrValidation
}

// UnbalancedEntryError carries the computed difference Debits - Credits.
type UnbalancedEntryError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Diff    decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("%s: debits sum is %s and credits sum is %s (difference %s)",
		ErrUnbalancedEntry.Error(), e.Debits.String(), e.Credits.String(), e.Diff.String())
}

func (e *UnbalancedEntryError) Is(target error) bool {
	return target == ErrUnbalancedEntry || target == ErrValidation
}

// DuplicateEntryError is returned when the caller supplied entry name is already taken.
type DuplicateEntryError struct {
	Name string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("journal entry with name '%s' already exists", e.Name)
}

func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicateEntry || target == ErrDuplicate
}

// DuplicateIdentifierError is returned when a generated row name collides with an existing row.
type DuplicateIdentifierError struct {
	Name string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateIdentifier.Error(), e.Name)
}

func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier || target == ErrDuplicate
}

// DuplicateKeyError is raised by store adapters on a primary key or unique violation.
// The posting engine turns it into DuplicateEntryError or DuplicateIdentifierError.
type DuplicateKeyError struct {
	Table string
	Name  string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrDuplicate.Error(), e.Table, e.Name)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicate
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// Validation wraps a validation failure so that it matches both ErrValidation and err.
func Validation(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
