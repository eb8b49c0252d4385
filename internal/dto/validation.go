package dto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EntryDateTag validates that a string holds a date ParseEntryDate accepts.
const EntryDateTag = "entrydate"

// RegisterValidations installs the request validators on v. The loader is the only
// caller; the CLI and the HTTP handler both decode through it so they read the same tags.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(EntryDateTag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true // Let required tag handle empty strings
		}
		_, err := ParseEntryDate(s)
		return err == nil
	}); err != nil {
		return fmt.Errorf("failed to register '%s': %w", EntryDateTag, err)
	}
	return nil
}
