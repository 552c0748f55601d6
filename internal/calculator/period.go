package calculator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/kirat/internal/models"
)

var (
	// ErrInvalidRange is returned for a month range outside 1..12 or reversed.
	ErrInvalidRange = errors.New("invalid month range")

	// ErrInconsistentInput flags a data-integrity fault in a report snapshot,
	// e.g. a payment for a property that is not part of the building.
	ErrInconsistentInput = errors.New("inconsistent report input")
)

func validateRange(fromMonth, toMonth int) error {
	if fromMonth < 1 || toMonth > 12 || fromMonth > toMonth {
		return fmt.Errorf("%w: %d..%d", ErrInvalidRange, fromMonth, toMonth)
	}
	return nil
}

// AggregatePeriod sums payments into per-property monthly rows and range totals.
//
// Only recorded payments count: a fixed-rent property without a payment
// contributes zero. Payments of other years are ignored. Apartments and
// stores are returned as separate tables sorted by CompareUnits.
func AggregatePeriod(properties []models.Property, payments []models.Payment, year, fromMonth, toMonth int) (*models.IncomeSummary, error) {
	if err := validateRange(fromMonth, toMonth); err != nil {
		return nil, err
	}

	rows := make(map[string]*models.PropertyIncome, len(properties))
	for _, p := range properties {
		if !p.Type.Valid() {
			return nil, fmt.Errorf("%w: property %s has type %q", ErrInconsistentInput, p.ID, p.Type)
		}
		rows[p.ID] = &models.PropertyIncome{
			PropertyID:  p.ID,
			Unit:        p.Unit,
			Type:        p.Type,
			PaymentType: p.PaymentType,
			FixedRent:   p.FixedRent,
			RenterID:    p.RenterID,
		}
	}

	for _, pay := range payments {
		if pay.Year != year {
			continue
		}
		row, ok := rows[pay.PropertyID]
		if !ok {
			return nil, fmt.Errorf("%w: payment for unknown property %s", ErrInconsistentInput, pay.PropertyID)
		}
		if pay.Month < 1 || pay.Month > 12 {
			return nil, fmt.Errorf("%w: payment for property %s has month %d", ErrInconsistentInput, pay.PropertyID, pay.Month)
		}
		row.Months[pay.Month-1] = row.Months[pay.Month-1].Add(pay.Amount)
	}

	summary := &models.IncomeSummary{
		Apartments: []models.PropertyIncome{},
		Stores:     []models.PropertyIncome{},
	}
	for _, p := range properties {
		row := rows[p.ID]
		for m := fromMonth; m <= toMonth; m++ {
			row.Total = row.Total.Add(row.Months[m-1])
		}

		if p.Type == models.PropertyStore {
			summary.Stores = append(summary.Stores, *row)
			summary.StoresTotal = summary.StoresTotal.Add(row.Total)
		} else {
			summary.Apartments = append(summary.Apartments, *row)
			summary.ApartmentsTotal = summary.ApartmentsTotal.Add(row.Total)
		}
	}

	byUnit := func(a, b models.PropertyIncome) int { return CompareUnits(a.Unit, b.Unit) }
	slices.SortStableFunc(summary.Apartments, byUnit)
	slices.SortStableFunc(summary.Stores, byUnit)

	summary.TotalIncome = summary.ApartmentsTotal.Add(summary.StoresTotal)
	return summary, nil
}

// sumPayments adds up a year's payments for the given properties.
func sumPayments(propertyIDs map[string]bool, payments []models.Payment, year int) decimal.Decimal {
	total := decimal.Zero
	for _, pay := range payments {
		if pay.Year == year && propertyIDs[pay.PropertyID] {
			total = total.Add(pay.Amount)
		}
	}
	return total
}
