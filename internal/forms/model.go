// Package forms defines the validated intake records consumed by the
// rendering engine: the single-vehicle checkout inspection and the
// multi-vehicle incident inventory.
package forms

import "time"

// InspectionItemCount is the fixed number of checklist items on the
// vehicle checkout form.
const InspectionItemCount = 17

// ItemStatus is the checkbox state of a single inspection item.
// Exactly one status applies per item.
type ItemStatus string

const (
	StatusPass ItemStatus = "pass"
	StatusFail ItemStatus = "fail"
	StatusNA   ItemStatus = "na"
)

// ReleaseStatus is the release decision recorded by the inspector.
// The rendered decision box is derived from the item list, not from
// this field; it is kept on the record for audit purposes.
type ReleaseStatus string

const (
	ReleaseHold    ReleaseStatus = "hold"
	ReleaseRelease ReleaseStatus = "release"
)

// Signature carries a captured signature image plus signer metadata.
type Signature struct {
	// ImageBase64 is a base64-encoded PNG, with or without a
	// data-URL prefix.
	ImageBase64 string    `validate:"required"`
	SignerName  string    `validate:"required"`
	SignedAt    time.Time `validate:"required"`
}

// InspectionItem is one row of the 17-item checkout checklist.
type InspectionItem struct {
	Number       int        `validate:"gt=0"`
	Description  string     `validate:"required"`
	Status       ItemStatus `validate:"required,oneof=pass fail na"`
	IsSafetyItem bool
	Comment      *string
}

// Inspection is the variant-A record: one vehicle, one checkout
// inspection, a fixed 17-item checklist.
type Inspection struct {
	IncidentName   string `validate:"required"`
	IncidentNumber string `validate:"required"`

	VehicleID    string `validate:"required"`
	VehicleMake  string
	VehicleModel string
	VehicleYear  string
	LicensePlate string
	VIN          string
	Odometer     string
	AgencyOwner  string

	Items    []InspectionItem `validate:"len=17,dive"`
	Comments string

	ReleaseStatus ReleaseStatus `validate:"required,oneof=hold release"`

	InspectorName string `validate:"required"`
	OperatorName  string
	InspectedAt   time.Time `validate:"required"`

	InspectorSignature *Signature
	OperatorSignature  *Signature
}

// HasFailedSafetyItem reports whether any safety-critical item failed.
// The decision box on the rendered form follows this, never the
// record's ReleaseStatus.
func (i Inspection) HasFailedSafetyItem() bool {
	for _, item := range i.Items {
		if item.IsSafetyItem && item.Status == StatusFail {
			return true
		}
	}
	return false
}

// MaxVehicleEntries caps the inventory list; upstream validation
// enforces it, which bounds worst-case page count for the renderer.
const MaxVehicleEntries = 100

// VehicleEntry is one row of the incident vehicle inventory. The
// eleven fields map one-to-one onto the table columns.
type VehicleEntry struct {
	Classification string `validate:"required"`
	Make           string
	Category       string
	Features       string
	AgencyOwner    string
	OperatorName   string
	LicenseOrID    string
	Assignment     string
	StartAt        *time.Time
	ReleasedAt     *time.Time
	ReferenceID    *string
}

// Inventory is the variant-B record: all vehicles assigned to an
// incident, rendered as a paginated table.
type Inventory struct {
	IncidentName   string `validate:"required"`
	IncidentNumber string `validate:"required"`

	Vehicles []VehicleEntry `validate:"min=1,max=100,dive"`

	PreparedBy        string    `validate:"required"`
	PreparedAt        time.Time `validate:"required"`
	PreparerSignature *Signature
}
