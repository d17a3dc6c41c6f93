package services

import (
	"errors"
	"fmt"
)

// ErrValidation is the base class of every input-rule failure. Callers match
// with errors.Is; the wrapped message carries the human-readable reason.
var ErrValidation = errors.New("validation failed")

var (
	ErrDescriptionRequired = fmt.Errorf("%w: description is required", ErrValidation)
	ErrCategoryRequired    = fmt.Errorf("%w: category is required", ErrValidation)
	ErrNameRequired        = fmt.Errorf("%w: name is required", ErrValidation)
	ErrServiceRequired     = fmt.Errorf("%w: service is required", ErrValidation)
	ErrDateRequired        = fmt.Errorf("%w: a valid date is required", ErrValidation)
	ErrNonPositiveAmount   = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrNegativeValue       = fmt.Errorf("%w: value cannot be negative", ErrValidation)
	ErrNegativeAmountPaid  = fmt.Errorf("%w: amount paid cannot be negative", ErrValidation)
	ErrPaidExceedsTotal    = fmt.Errorf("%w: amount paid cannot exceed total amount", ErrValidation)
	ErrInvalidDateRange    = fmt.Errorf("%w: start date cannot be after end date", ErrValidation)
	ErrInvalidNumberFormat = fmt.Errorf("%w: invoice number can only contain letters, numbers, and dashes", ErrValidation)
	ErrUnknownCustomer     = fmt.Errorf("%w: selected customer does not exist", ErrValidation)
)
