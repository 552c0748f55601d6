package models

import "github.com/shopspring/decimal"

// PropertyIncome is one row of an income table: a property's recorded
// payments per month and the total for the requested month range.
type PropertyIncome struct {
	PropertyID  string              `json:"propertyId"`
	Unit        string              `json:"unit"`
	Type        PropertyType        `json:"type"`
	PaymentType PaymentType         `json:"paymentType"`
	FixedRent   decimal.Decimal     `json:"fixedRent"`
	RenterID    string              `json:"renterId,omitempty"`
	Months      [12]decimal.Decimal `json:"months"`
	Total       decimal.Decimal     `json:"total"`
}

// IncomeSummary holds the apartment and store tables of a building and their totals.
type IncomeSummary struct {
	Apartments      []PropertyIncome `json:"apartments"`
	Stores          []PropertyIncome `json:"stores"`
	ApartmentsTotal decimal.Decimal  `json:"apartmentsTotal"`
	StoresTotal     decimal.Decimal  `json:"storesTotal"`
	TotalIncome     decimal.Decimal  `json:"totalIncome"`
}

// ExpenseLine is an expense as shown in a report.
type ExpenseLine struct {
	ExpenseID    string          `json:"expenseId"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseType  ExpenseType     `json:"expenseType"`
	OwnerGroupID string          `json:"ownerGroupId,omitempty"`

	// GroupName is the resolved name of OwnerGroupID.
	// Blank when the expense is building-wide or the group no longer exists.
	GroupName string `json:"groupName,omitempty"`
}

// YearlyReport is the simple building view over a whole year: income tables,
// every expense regardless of type, and NetIncome = TotalIncome - TotalExpenses.
type YearlyReport struct {
	BuildingID   string `json:"buildingId"`
	BuildingName string `json:"buildingName"`
	Year         int    `json:"year"`
	IncomeSummary

	Expenses      []ExpenseLine   `json:"expenses"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BuildingDivisionReport shows how a building's income for a month range is
// divided among its owner groups.
type BuildingDivisionReport struct {
	BuildingID   string `json:"buildingId"`
	BuildingName string `json:"buildingName"`
	Year         int    `json:"year"`
	FromMonth    int    `json:"fromMonth"`
	ToMonth      int    `json:"toMonth"`
	TotalKirats  int    `json:"totalKirats"`
	IncomeSummary

	// BuildingExpenses are proportional and whole-building equal expenses.
	BuildingExpenses      []ExpenseLine   `json:"buildingExpenses"`
	BuildingExpensesTotal decimal.Decimal `json:"buildingExpensesTotal"`

	ProportionalExpensesTotal decimal.Decimal `json:"proportionalExpensesTotal"`
	NetAfterProportional      decimal.Decimal `json:"netAfterProportional"`

	// NetIncome is TotalIncome - BuildingExpensesTotal.
	NetIncome decimal.Decimal `json:"netIncome"`

	Groups []GroupDivision `json:"groups"`

	// GroupExpenses lists every group-scoped equal expense, including those
	// whose group is no longer part of the building.
	GroupExpenses []ExpenseLine `json:"groupExpenses"`
}

// GroupDivision is one owner group's part of a BuildingDivisionReport.
type GroupDivision struct {
	GroupID    string          `json:"groupId"`
	Name       string          `json:"name"`
	Kirats     int             `json:"kirats"`
	Percentage decimal.Decimal `json:"percentage"`

	// GroupShare is Kirats/TotalKirats of the net income after proportional expenses.
	GroupShare decimal.Decimal `json:"groupShare"`

	// GroupExpensesTotal only counts equal expenses scoped to this group.
	GroupExpensesTotal decimal.Decimal `json:"groupExpensesTotal"`
	NetGroupShare      decimal.Decimal `json:"netGroupShare"`

	Expenses []ExpenseLine `json:"expenses"`
	Members  []MemberShare `json:"members"`
}

// MemberShare is one member's part of a group.
type MemberShare struct {
	Name       string          `json:"name"`
	UserID     string          `json:"userId,omitempty"`
	Kirats     int             `json:"kirats"`
	GrossShare decimal.Decimal `json:"grossShare"`

	// EqualExpenses is the member's per-head part of group-scoped and
	// whole-building equal expenses.
	EqualExpenses decimal.Decimal `json:"equalExpenses"`
	NetShare      decimal.Decimal `json:"netShare"`
}

// PersonConsolidatedReport is what one person nets across every building
// they are a member of for a year.
type PersonConsolidatedReport struct {
	PersonID   string `json:"personId"`
	PersonName string `json:"personName"`
	Year       int    `json:"year"`

	Buildings        []PersonBuildingShare `json:"buildings"`
	RentedProperties []RentedProperty      `json:"rentedProperties"`
	Summary          PersonSummary         `json:"summary"`
}

// PersonBuildingShare is one building's contribution to a person report.
type PersonBuildingShare struct {
	BuildingID          string          `json:"buildingId"`
	BuildingName        string          `json:"buildingName"`
	TotalKirats         int             `json:"totalKirats"`
	UserKirats          int             `json:"userKirats"`
	OwnershipPercentage decimal.Decimal `json:"ownershipPercentage"`
	Groups              []string        `json:"groups"`

	GrossIncome    decimal.Decimal       `json:"grossIncome"`
	EqualExpenses  decimal.Decimal       `json:"equalExpenses"`
	ExpenseDetails []PersonExpenseDetail `json:"expenseDetails"`
	RentDeduction  decimal.Decimal       `json:"rentDeduction"`
	NetIncome      decimal.Decimal       `json:"netIncome"`
}

// PersonExpenseDetail is the person's share of one equal expense.
type PersonExpenseDetail struct {
	ExpenseID    string          `json:"expenseId"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Share        decimal.Decimal `json:"share"`
	OwnerGroupID string          `json:"ownerGroupId,omitempty"`
	GroupName    string          `json:"groupName,omitempty"`
}

// RentedProperty is a property the person rents, with the rent paid in the year.
type RentedProperty struct {
	PropertyID   string          `json:"propertyId"`
	BuildingID   string          `json:"buildingId"`
	BuildingName string          `json:"buildingName"`
	Unit         string          `json:"unit"`
	Type         PropertyType    `json:"type"`
	PaidThisYear decimal.Decimal `json:"paidThisYear"`
}

// PersonSummary sums the per-building figures of a person report.
type PersonSummary struct {
	GrossIncome   decimal.Decimal `json:"grossIncome"`
	EqualExpenses decimal.Decimal `json:"equalExpenses"`
	RentDeduction decimal.Decimal `json:"rentDeduction"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}
