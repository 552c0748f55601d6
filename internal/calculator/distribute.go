package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/kirat/internal/models"
)

var hundred = decimal.NewFromInt(100)

// kiratShare returns part/whole of amount, multiplying before dividing.
// A zero whole yields zero rather than a division error.
func kiratShare(part, whole int, amount decimal.Decimal) decimal.Decimal {
	if whole == 0 || part == 0 {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromInt(int64(part))).Div(decimal.NewFromInt(int64(whole)))
}

// perHead splits amount evenly across count heads, times the number of
// heads taken. An empty scope yields zero.
func perHead(amount decimal.Decimal, heads, count int) decimal.Decimal {
	if count == 0 || heads == 0 {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromInt(int64(heads))).Div(decimal.NewFromInt(int64(count)))
}

// percentage returns part/whole*100 rounded to two places, zero when whole is zero.
func percentage(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return kiratShare(part, whole, hundred).Round(2)
}

// DistributeRevenue divides the building's net income after proportional
// expenses among owner groups and their members.
//
// Group:  GroupShare = Kirats/TotalKirats * netAfterProportional,
// NetGroupShare = GroupShare - group-scoped equal expenses.
// Member: GrossShare = Kirats/group.Kirats * GroupShare, minus a per-head part
// of the group's equal expenses (split across the group's members) and of the
// whole-building equal expenses (split across every member of the building).
//
// Ownership structures that do not add up are tolerated; shares simply do
// not cover the whole income.
func DistributeRevenue(b *models.Building, netAfterProportional decimal.Decimal, alloc *ExpenseAllocation) []models.GroupDivision {
	buildingMembers := b.MemberCount()

	groups := make([]models.GroupDivision, 0, len(b.OwnerGroups))
	for _, g := range b.OwnerGroups {
		groupShare := kiratShare(g.Kirats, b.TotalKirats, netAfterProportional)
		groupExpenses := alloc.GroupEqualTotal(g.ID)

		div := models.GroupDivision{
			GroupID:            g.ID,
			Name:               g.Name,
			Kirats:             g.Kirats,
			Percentage:         percentage(g.Kirats, b.TotalKirats),
			GroupShare:         groupShare,
			GroupExpensesTotal: groupExpenses,
			NetGroupShare:      groupShare.Sub(groupExpenses),
			Expenses:           expenseLines(alloc.GroupEqual[g.ID], b),
			Members:            make([]models.MemberShare, 0, len(g.Members)),
		}

		equalPerMember := perHead(groupExpenses, 1, len(g.Members)).
			Add(perHead(alloc.BuildingEqualTotal, 1, buildingMembers))

		for _, m := range g.Members {
			gross := kiratShare(m.Kirats, g.Kirats, groupShare)
			div.Members = append(div.Members, models.MemberShare{
				Name:          m.Name,
				UserID:        m.UserID,
				Kirats:        m.Kirats,
				GrossShare:    gross,
				EqualExpenses: equalPerMember,
				NetShare:      gross.Sub(equalPerMember),
			})
		}

		groups = append(groups, div)
	}

	return groups
}
