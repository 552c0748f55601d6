package models

import "github.com/shopspring/decimal"

// ExpenseType controls how an expense is borne by owners.
type ExpenseType string

const (
	// ExpenseProportional reduces building income before the kirat split.
	ExpenseProportional ExpenseType = "proportional"

	// ExpenseEqual is divided evenly across a member scope after the split.
	ExpenseEqual ExpenseType = "equal"
)

// Valid reports whether t is a known expense type.
func (t ExpenseType) Valid() bool {
	return t == ExpenseProportional || t == ExpenseEqual
}

// Expense is a yearly building expense.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// BuildingID is the building the expense was recorded against.
	BuildingID string

	// Year is the report year the expense belongs to.
	Year int

	// Description is a short human-readable label (e.g., "Elevator repair").
	Description string

	// Amount is the full expense amount.
	Amount decimal.Decimal

	// ExpenseType is proportional or equal.
	ExpenseType ExpenseType

	// OwnerGroupID scopes an equal expense to one group.
	// Empty means the whole building.
	OwnerGroupID string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// IsGroupScoped reports whether the expense is an equal expense tied to one group.
func (e *Expense) IsGroupScoped() bool {
	return e.ExpenseType == ExpenseEqual && e.OwnerGroupID != ""
}
