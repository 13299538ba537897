package company

import "errors"

var (
	// ErrUnknownPreset is returned when a difficulty preset does not exist
	ErrUnknownPreset = errors.New("unknown difficulty preset")

	// ErrInsufficientCash is returned when a decision costs more than the
	// team can pay
	ErrInsufficientCash = errors.New("insufficient cash")

	// ErrProductNotFound is returned when decisions reference a product the
	// team does not have
	ErrProductNotFound = errors.New("product not found")
)
