package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/kirat/internal/models"
)

// ExpenseAllocation is a building's expenses for one year, split by how they
// are borne.
//
// Proportional expenses reduce the pool before any kirat split. Equal
// expenses reduce only their scope (one group or the whole building) after
// the split. Reversing that order changes every downstream figure.
type ExpenseAllocation struct {
	// Expenses are all expenses of the year, in input order.
	Expenses []models.Expense

	ProportionalTotal decimal.Decimal

	// BuildingEqual are equal expenses without a group scope.
	BuildingEqual      []models.Expense
	BuildingEqualTotal decimal.Decimal

	// GroupEqual are equal expenses keyed by owner group ID.
	GroupEqual map[string][]models.Expense

	// BuildingExpenses are the whole-building expenses: every proportional
	// expense plus BuildingEqual.
	BuildingExpenses      []models.Expense
	BuildingExpensesTotal decimal.Decimal

	// TotalExpenses is the sum of every expense regardless of type.
	TotalExpenses decimal.Decimal
}

// GroupEqualTotal returns the sum of the equal expenses scoped to a group.
func (a *ExpenseAllocation) GroupEqualTotal(groupID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.GroupEqual[groupID] {
		total = total.Add(e.Amount)
	}
	return total
}

// AllocateExpenses classifies a building's expenses for the given year.
func AllocateExpenses(expenses []models.Expense, year int) (*ExpenseAllocation, error) {
	alloc := &ExpenseAllocation{
		Expenses:         []models.Expense{},
		BuildingEqual:    []models.Expense{},
		GroupEqual:       make(map[string][]models.Expense),
		BuildingExpenses: []models.Expense{},
	}

	for _, e := range expenses {
		if e.Year != year {
			continue
		}
		alloc.Expenses = append(alloc.Expenses, e)
		alloc.TotalExpenses = alloc.TotalExpenses.Add(e.Amount)

		switch e.ExpenseType {
		case models.ExpenseProportional:
			alloc.ProportionalTotal = alloc.ProportionalTotal.Add(e.Amount)
			alloc.BuildingExpenses = append(alloc.BuildingExpenses, e)
			alloc.BuildingExpensesTotal = alloc.BuildingExpensesTotal.Add(e.Amount)
		case models.ExpenseEqual:
			if e.OwnerGroupID != "" {
				alloc.GroupEqual[e.OwnerGroupID] = append(alloc.GroupEqual[e.OwnerGroupID], e)
				continue
			}
			alloc.BuildingEqual = append(alloc.BuildingEqual, e)
			alloc.BuildingEqualTotal = alloc.BuildingEqualTotal.Add(e.Amount)
			alloc.BuildingExpenses = append(alloc.BuildingExpenses, e)
			alloc.BuildingExpensesTotal = alloc.BuildingExpensesTotal.Add(e.Amount)
		default:
			return nil, fmt.Errorf("%w: expense %s has type %q", ErrInconsistentInput, e.ID, e.ExpenseType)
		}
	}

	return alloc, nil
}

// expenseLine renders an expense for a report, resolving its group name
// against the building. A group that no longer exists resolves to "".
func expenseLine(e models.Expense, b *models.Building) models.ExpenseLine {
	line := models.ExpenseLine{
		ExpenseID:    e.ID,
		Description:  e.Description,
		Amount:       e.Amount,
		ExpenseType:  e.ExpenseType,
		OwnerGroupID: e.OwnerGroupID,
	}
	if e.OwnerGroupID != "" {
		if g, ok := b.FindGroup(e.OwnerGroupID); ok {
			line.GroupName = g.Name
		}
	}
	return line
}

func expenseLines(expenses []models.Expense, b *models.Building) []models.ExpenseLine {
	lines := make([]models.ExpenseLine, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, expenseLine(e, b))
	}
	return lines
}
