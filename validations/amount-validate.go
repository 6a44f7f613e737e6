package validations

import (
	"errors"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidAmount = errors.New("amount must be a positive number")

// ParseAmount parses a user supplied amount string. The value must be a
// finite decimal strictly greater than zero.
func ParseAmount(input string) (float64, error) {
	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// Amount validation function
var ValidAmount validator.Func = func(fieldLevel validator.FieldLevel) bool {
	_, err := ParseAmount(fieldLevel.Field().String())
	return err == nil
}
