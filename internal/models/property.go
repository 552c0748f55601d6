package models

import "github.com/shopspring/decimal"

// PropertyType distinguishes apartments from stores.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyStore     PropertyType = "store"
)

// Valid reports whether t is a known property type.
func (t PropertyType) Valid() bool {
	return t == PropertyApartment || t == PropertyStore
}

// PaymentType describes how rent is charged for a property.
type PaymentType string

const (
	PaymentFixed    PaymentType = "fixed"
	PaymentFlexible PaymentType = "flexible"
	PaymentBlocked  PaymentType = "blocked"
)

// Valid reports whether t is a known payment type.
func (t PaymentType) Valid() bool {
	return t == PaymentFixed || t == PaymentFlexible || t == PaymentBlocked
}

// Property is a rentable unit inside a building.
type Property struct {
	// ID is the unique identifier for the property (UUID format).
	ID string

	// BuildingID is the building this property belongs to.
	BuildingID string

	// Unit is the unit label (e.g., "3", "Shop 2", "٤").
	// Labels may use any numeral script.
	Unit string

	// Type is apartment or store.
	Type PropertyType

	// PaymentType is fixed, flexible or blocked.
	PaymentType PaymentType

	// FixedRent is the agreed monthly rent for fixed properties.
	// It is informational only; reports count recorded payments.
	FixedRent decimal.Decimal

	// RenterID links the property to the Person renting it. Empty when vacant.
	RenterID string
}

// Payment is a recorded rent payment. (PropertyID, Year, Month) is unique.
type Payment struct {
	PropertyID string
	Year       int
	Month      int
	Amount     decimal.Decimal
}
