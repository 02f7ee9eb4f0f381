package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)

// Draft holds the fields a user submits for a new transaction.
type Draft struct {
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	Type          TransactionType
	Category      string
	Name          string
	PhoneNumber   string
	PaymentMethod PaymentMethod
}

// FieldError describes one invalid field of a Draft.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidDraft
}

// Validate checks every field and returns all failures joined, or nil.
func (d Draft) Validate() error {
	var errs []error
	fail := func(field, msg string) {
		errs = append(errs, &FieldError{Field: field, Message: msg})
	}

	if d.Date.IsZero() {
		fail("date", "Date is required.")
	}
	if strings.TrimSpace(d.Description) == "" {
		fail("description", "Description is required.")
	}
	if !d.Amount.IsPositive() {
		fail("amount", "Amount must be positive.")
	}
	if !d.Type.Valid() {
		fail("type", "Type is required.")
	}
	if strings.TrimSpace(d.Category) == "" {
		fail("category", "Category is required.")
	}
	if strings.TrimSpace(d.Name) == "" {
		fail("name", "Name is required.")
	}
	switch {
	case strings.TrimSpace(d.PhoneNumber) == "":
		fail("phoneNumber", "Phone number is required.")
	case !phonePattern.MatchString(d.PhoneNumber):
		fail("phoneNumber", "Invalid phone number format.")
	}
	if !d.PaymentMethod.Valid() {
		fail("paymentMethod", "Payment method is required.")
	}

	return errors.Join(errs...)
}

// FieldErrors extracts the individual field failures from a Validate error.
func FieldErrors(err error) []*FieldError {
	var out []*FieldError
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			var fe *FieldError
			if errors.As(e, &fe) {
				out = append(out, fe)
			}
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}
