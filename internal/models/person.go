package models

import (
	"time"

	"github.com/google/uuid"
)

// Person is someone who owns kirats, rents a property, or both.
// Persons are also the accounts that log in to the service.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string

	// Email is the login address (unique).
	Email string

	// DisplayName is the name shown in reports.
	DisplayName string

	// Phone is an optional contact number.
	Phone string

	// PasswordHash is the bcrypt hash of the password. Never serialised.
	PasswordHash string

	// BuildingsOwned is the set of building IDs where the person is a member.
	// Recomputed from building scans, not stored.
	BuildingsOwned []string

	// PropertiesRented is the set of property IDs rented by the person.
	// Recomputed from property scans, not stored.
	PropertiesRented []string

	CreatedAt int64
	UpdatedAt int64
}

// NewPerson creates a new person with a generated ID and timestamps.
func NewPerson(email, displayName, passwordHash string) *Person {
	now := time.Now().Unix()
	return &Person{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BuildingData is the complete input snapshot for one building and year.
type BuildingData struct {
	Building   Building
	Properties []Property
	Payments   []Payment
	Expenses   []Expense
}
