package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"time"

	"github.com/fleetform/fleetform/internal/forms"
)

// checklistItems is the fixed 17-item checkout checklist.
var checklistItems = []struct {
	desc   string
	safety bool
}{
	{"Headlights and tail lights operational", true},
	{"Turn signals and hazard flashers", true},
	{"Brakes and parking brake", true},
	{"Tires: tread depth and inflation", true},
	{"Windshield wipers and washer fluid", false},
	{"Mirrors adjusted and intact", false},
	{"Seat belts functional, all positions", true},
	{"Horn operational", false},
	{"Fire extinguisher charged and secured", true},
	{"First aid kit stocked", false},
	{"Fluid levels: oil, coolant, hydraulic", false},
	{"No visible fluid leaks", true},
	{"Battery terminals clean and tight", false},
	{"Exhaust system secure, no leaks", true},
	{"Steering responsive, no excess play", true},
	{"Radio / communications equipment", false},
	{"Body damage documented with photos", false},
}

func sampleItems(failNumber int) []forms.InspectionItem {
	items := make([]forms.InspectionItem, len(checklistItems))
	for i, it := range checklistItems {
		status := forms.StatusPass
		if i+1 == failNumber {
			status = forms.StatusFail
		}
		items[i] = forms.InspectionItem{
			Number:       i + 1,
			Description:  it.desc,
			Status:       status,
			IsSafetyItem: it.safety,
		}
	}
	return items
}

func sampleReleasedCheckout(now time.Time) forms.Inspection {
	items := sampleItems(0)
	note := "Minor scratch on rear bumper, photographed"
	items[16].Comment = &note
	return forms.Inspection{
		IncidentName:       "Cedar Creek Fire",
		IncidentNumber:     "OR-WIF-220417",
		VehicleID:          "E-4471",
		VehicleMake:        "Ford",
		VehicleModel:       "F-550",
		VehicleYear:        "2021",
		LicensePlate:       "E441892",
		VIN:                "1FDUF5HT3MDA04417",
		Odometer:           "48,312",
		AgencyOwner:        "Lane County Fire Defense",
		OperatorName:       "M. Alvarez",
		Items:              items,
		Comments:           "Vehicle clean, full fuel, all equipment accounted for at time of checkout.",
		ReleaseStatus:      forms.ReleaseRelease,
		InspectorName:      "T. Nakamura",
		InspectedAt:        now,
		InspectorSignature: sampleSignature("T. Nakamura", now),
	}
}

func sampleHeldCheckout(now time.Time) forms.Inspection {
	items := sampleItems(3)
	note := "Brake pedal travels to floor, no pressure"
	items[2].Comment = &note
	rec := sampleReleasedCheckout(now)
	rec.VehicleID = "WT-2208"
	rec.VehicleMake = "International"
	rec.VehicleModel = "7400 Water Tender"
	rec.Items = items
	rec.Comments = "Do not dispatch until brake system is serviced and re-inspected."
	// Deliberately contradicts the checklist; the rendered decision
	// box follows the failed safety item, not this field.
	rec.ReleaseStatus = forms.ReleaseRelease
	return rec
}

func sampleInventory(now time.Time, count int) forms.Inventory {
	classes := []string{"Engine", "Water Tender", "Dozer", "Crew Buggy", "Pickup"}
	makes := []string{"Ford", "International", "Caterpillar", "Freightliner", "Chevrolet"}
	vehicles := make([]forms.VehicleEntry, count)
	for i := range vehicles {
		start := now.Add(-time.Duration(36+i) * time.Hour)
		ref := fmt.Sprintf("REQ-%04d", 2200+i)
		vehicles[i] = forms.VehicleEntry{
			Classification: classes[i%len(classes)],
			Make:           makes[i%len(makes)],
			Category:       fmt.Sprintf("Type %d", i%6+1),
			Features:       "4x4, foam proportioner",
			AgencyOwner:    "ODF District 5",
			OperatorName:   fmt.Sprintf("Operator %02d", i+1),
			LicenseOrID:    fmt.Sprintf("E%05d", 40000+i*7),
			Assignment:     fmt.Sprintf("Div %c", 'A'+i%4),
			StartAt:        &start,
			ReferenceID:    &ref,
		}
	}
	return forms.Inventory{
		IncidentName:      "Cedar Creek Fire",
		IncidentNumber:    "OR-WIF-220417",
		Vehicles:          vehicles,
		PreparedBy:        "K. Osei",
		PreparedAt:        now,
		PreparerSignature: sampleSignature("K. Osei", now),
	}
}

// sampleSignature fabricates a small PNG so the sample documents
// exercise the raster embedding path without shipping assets.
func sampleSignature(name string, at time.Time) *forms.Signature {
	img := image.NewRGBA(image.Rect(0, 0, 120, 36))
	ink := color.RGBA{R: 20, G: 20, B: 90, A: 255}
	for x := 8; x < 112; x++ {
		y := 10 + x%17
		img.Set(x, y, ink)
		img.Set(x, y+1, ink)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return &forms.Signature{
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		SignerName:  name,
		SignedAt:    at,
	}
}
