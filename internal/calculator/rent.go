package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/kirat/internal/models"
)

// RentDeduction is the full rent a person paid during the year for
// properties they rent in the building. It is not prorated by ownership.
func RentDeduction(personID string, properties []models.Property, payments []models.Payment, year int) decimal.Decimal {
	if personID == "" {
		return decimal.Zero
	}
	rented := make(map[string]bool)
	for _, p := range properties {
		if p.RenterID == personID {
			rented[p.ID] = true
		}
	}
	if len(rented) == 0 {
		return decimal.Zero
	}
	return sumPayments(rented, payments, year)
}

// rentedProperties lists the properties of one building rented by the person.
func rentedProperties(personID string, data *models.BuildingData, year int) []models.RentedProperty {
	var out []models.RentedProperty
	for _, p := range data.Properties {
		if personID == "" || p.RenterID != personID {
			continue
		}
		out = append(out, models.RentedProperty{
			PropertyID:   p.ID,
			BuildingID:   data.Building.ID,
			BuildingName: data.Building.Name,
			Unit:         p.Unit,
			Type:         p.Type,
			PaidThisYear: sumPayments(map[string]bool{p.ID: true}, data.Payments, year),
		})
	}
	return out
}
