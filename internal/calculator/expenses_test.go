package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kirat/internal/models"
)

func TestAllocateExpenses(t *testing.T) {
	expenses := []models.Expense{
		{ID: "p1", Year: 2024, Amount: d("1000"), ExpenseType: models.ExpenseProportional},
		{ID: "p2", Year: 2024, Amount: d("50"), ExpenseType: models.ExpenseProportional, OwnerGroupID: "g1"},
		{ID: "e1", Year: 2024, Amount: d("300"), ExpenseType: models.ExpenseEqual},
		{ID: "e2", Year: 2024, Amount: d("200"), ExpenseType: models.ExpenseEqual, OwnerGroupID: "g1"},
		{ID: "e3", Year: 2024, Amount: d("80"), ExpenseType: models.ExpenseEqual, OwnerGroupID: "g2"},
		{ID: "old", Year: 2023, Amount: d("999"), ExpenseType: models.ExpenseProportional},
	}

	alloc, err := AllocateExpenses(expenses, 2024)
	require.NoError(t, err)

	assertDecimal(t, "1050", alloc.ProportionalTotal)
	assertDecimal(t, "300", alloc.BuildingEqualTotal)
	assertDecimal(t, "1350", alloc.BuildingExpensesTotal)
	assertDecimal(t, "1630", alloc.TotalExpenses)
	assertDecimal(t, "200", alloc.GroupEqualTotal("g1"))
	assertDecimal(t, "80", alloc.GroupEqualTotal("g2"))
	assertDecimal(t, "0", alloc.GroupEqualTotal("missing"))

	assert.Len(t, alloc.Expenses, 5)
	assert.Len(t, alloc.BuildingExpenses, 3)
	assert.Len(t, alloc.BuildingEqual, 1)
}

func TestAllocateExpenses_UnknownType(t *testing.T) {
	_, err := AllocateExpenses([]models.Expense{{ID: "x", Year: 2024, Amount: d("1"), ExpenseType: "mystery"}}, 2024)
	assert.ErrorIs(t, err, ErrInconsistentInput)
}

func TestExpenseLine_MissingGroup(t *testing.T) {
	b := &models.Building{OwnerGroups: []models.OwnerGroup{{ID: "g1", Name: "North"}}}

	known := expenseLine(models.Expense{ID: "a", OwnerGroupID: "g1", ExpenseType: models.ExpenseEqual}, b)
	assert.Equal(t, "North", known.GroupName)

	orphan := expenseLine(models.Expense{ID: "b", OwnerGroupID: "deleted", ExpenseType: models.ExpenseEqual}, b)
	assert.Equal(t, "", orphan.GroupName)
	assert.Equal(t, "deleted", orphan.OwnerGroupID)
}
