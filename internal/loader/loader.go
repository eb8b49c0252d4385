// Package loader reads a journal entry document from disk and checks its shape.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/dto"
)

// DefaultPath is the document read when no path is given.
const DefaultPath = "journal_entry.json"

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName("binding")
		if err := dto.RegisterValidations(v); err != nil {
			errValidate = err
			return
		}
		validate = v
	})
	return validate, errValidate
}

// LoadFile reads and validates the journal entry document at path.
func LoadFile(path string) (*dto.PostJournalEntryRequest, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal entry file %s: %w", path, err)
	}
	defer f.Close()

	req, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("invalid journal entry file %s: %w", path, err)
	}
	return req, nil
}

// Decode reads one journal entry document from r and validates it.
func Decode(r io.Reader) (*dto.PostJournalEntryRequest, error) {
	var req dto.PostJournalEntryRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, apperrors.Validation(fmt.Errorf("malformed JSON: %w", err))
	}
	if err := Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate checks the request against its binding tags.
func Validate(req *dto.PostJournalEntryRequest) error {
	v, err := getValidator()
	if err != nil {
		return fmt.Errorf("validator initialization failed: %w", err)
	}
	if err := v.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return apperrors.Validation(describe(fieldErrs))
		}
		return apperrors.Validation(err)
	}
	return nil
}

func describe(fieldErrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "PostJournalEntryRequest.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("'%s' is required", field))
		case "max":
			msgs = append(msgs, fmt.Sprintf("'%s' must be at most %s characters", field, fe.Param()))
		case dto.EntryDateTag:
			msgs = append(msgs, fmt.Sprintf("'%s' must be YYYY-MM-DD or RFC 3339", field))
		default:
			msgs = append(msgs, fmt.Sprintf("'%s' failed '%s'", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
