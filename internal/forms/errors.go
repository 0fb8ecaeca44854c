package forms

import "errors"

// Validation errors surfaced to the intake layer.
var (
	// ErrItemCount indicates the checkout checklist does not carry
	// exactly 17 items.
	ErrItemCount = errors.New("inspection requires exactly 17 checklist items")

	ErrNoVehicles       = errors.New("inventory requires at least one vehicle")
	ErrTooManyVehicles  = errors.New("inventory exceeds 100 vehicle entries")
	ErrDuplicateItemNum = errors.New("duplicate checklist item number")
)
