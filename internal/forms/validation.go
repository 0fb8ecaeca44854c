package forms

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the checkout record before it is handed to the
// renderer. The renderer itself performs no validation; callers are
// expected to reject bad records here.
func (i Inspection) Validate() error {
	if len(i.Items) != InspectionItemCount {
		return fmt.Errorf("got %d items: %w", len(i.Items), ErrItemCount)
	}
	seen := make(map[int]bool, len(i.Items))
	for _, item := range i.Items {
		if seen[item.Number] {
			return fmt.Errorf("item %d: %w", item.Number, ErrDuplicateItemNum)
		}
		seen[item.Number] = true
	}
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("inspection record: %w", err)
	}
	return nil
}

// Validate checks the inventory record before rendering.
func (inv Inventory) Validate() error {
	if len(inv.Vehicles) == 0 {
		return ErrNoVehicles
	}
	if len(inv.Vehicles) > MaxVehicleEntries {
		return fmt.Errorf("got %d vehicles: %w", len(inv.Vehicles), ErrTooManyVehicles)
	}
	if err := validate.Struct(inv); err != nil {
		return fmt.Errorf("inventory record: %w", err)
	}
	return nil
}
