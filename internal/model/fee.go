package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceFee is a fee snapshot that is either present with a positive value or
// absent. An absent fee contributes zero to every total.
type ServiceFee struct {
	amount  decimal.Decimal
	present bool
}

// NoFee returns an absent fee.
func NoFee() ServiceFee {
	return ServiceFee{}
}

// FeeOf returns a present fee of d. Zero or negative values collapse to NoFee.
func FeeOf(d decimal.Decimal) ServiceFee {
	if !d.IsPositive() {
		return NoFee()
	}
	return ServiceFee{amount: d, present: true}
}

// Present reports whether a fee was recorded.
func (f ServiceFee) Present() bool {
	return f.present
}

// Amount returns the fee value, or zero when absent.
func (f ServiceFee) Amount() decimal.Decimal {
	if !f.present {
		return decimal.Zero
	}
	return f.amount
}

// Equal reports whether two fees are both absent or both present with the same value.
func (f ServiceFee) Equal(other ServiceFee) bool {
	if f.present != other.present {
		return false
	}
	return f.Amount().Equal(other.Amount())
}

func (f ServiceFee) String() string {
	if !f.present {
		return ""
	}
	return f.amount.StringFixed(2)
}

// FeeRate is the service fee as a percentage of the gross amount.
type FeeRate struct {
	percent decimal.Decimal
}

// DefaultFeeRate is used when no rate has been saved.
var DefaultFeeRate = FeeRate{percent: decimal.NewFromInt(1)}

// NewFeeRate validates percent and returns it as a FeeRate.
func NewFeeRate(percent decimal.Decimal) (FeeRate, error) {
	if percent.IsNegative() {
		return FeeRate{}, fmt.Errorf("%w: %s is negative", ErrInvalidFeeRate, percent)
	}
	return FeeRate{percent: percent}, nil
}

// ParseFeeRate parses user input such as "1" or "2.5".
func ParseFeeRate(s string) (FeeRate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FeeRate{}, fmt.Errorf("%w: empty", ErrInvalidFeeRate)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return FeeRate{}, fmt.Errorf("%w: %q is not a number", ErrInvalidFeeRate, s)
	}
	return NewFeeRate(d)
}

// MustFeeRate is ParseFeeRate for constants; it panics on invalid input.
func MustFeeRate(s string) FeeRate {
	rate, err := ParseFeeRate(s)
	if err != nil {
		panic(err)
	}
	return rate
}

// Percent returns the rate in percent.
func (r FeeRate) Percent() decimal.Decimal {
	return r.percent
}

// Equal reports whether two rates are numerically equal.
func (r FeeRate) Equal(other FeeRate) bool {
	return r.percent.Equal(other.percent)
}

func (r FeeRate) String() string {
	return r.percent.String()
}
