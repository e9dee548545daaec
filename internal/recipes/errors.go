package recipes

import "errors"

// Validation failures, checked in declaration order.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidTitle       = errors.New("invalid title")
	ErrInvalidIngredients = errors.New("invalid ingredients")
	ErrInvalidSteps       = errors.New("invalid steps")
	ErrInvalidPrepTime    = errors.New("invalid prep time")
)

var (
	// ErrDuplicateTitle means a recipe with the same case-insensitive trimmed title exists.
	ErrDuplicateTitle = errors.New("duplicate title")
	// ErrPersistence wraps any failure reading or writing the collection.
	ErrPersistence = errors.New("persistence failure")
)

// IsValidation reports whether err is one of the validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidTitle) ||
		errors.Is(err, ErrInvalidIngredients) ||
		errors.Is(err, ErrInvalidSteps) ||
		errors.Is(err, ErrInvalidPrepTime)
}
