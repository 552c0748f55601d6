package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/kirat/internal/models"
)

// BuildYearlyReport builds the simple whole-year view of a building:
// income tables, every expense, and NetIncome = TotalIncome - TotalExpenses.
func BuildYearlyReport(data *models.BuildingData, year int) (*models.YearlyReport, error) {
	income, err := AggregatePeriod(data.Properties, data.Payments, year, 1, 12)
	if err != nil {
		return nil, err
	}
	alloc, err := AllocateExpenses(data.Expenses, year)
	if err != nil {
		return nil, err
	}

	return &models.YearlyReport{
		BuildingID:    data.Building.ID,
		BuildingName:  data.Building.Name,
		Year:          year,
		IncomeSummary: *income,
		Expenses:      expenseLines(alloc.Expenses, &data.Building),
		TotalExpenses: alloc.TotalExpenses,
		NetIncome:     income.TotalIncome.Sub(alloc.TotalExpenses),
	}, nil
}

// BuildDivisionReport shows how a building's income for [fromMonth, toMonth]
// is divided among its owner groups.
func BuildDivisionReport(data *models.BuildingData, year, fromMonth, toMonth int) (*models.BuildingDivisionReport, error) {
	income, err := AggregatePeriod(data.Properties, data.Payments, year, fromMonth, toMonth)
	if err != nil {
		return nil, err
	}
	alloc, err := AllocateExpenses(data.Expenses, year)
	if err != nil {
		return nil, err
	}

	b := &data.Building
	netAfterProportional := income.TotalIncome.Sub(alloc.ProportionalTotal)

	var groupScoped []models.Expense
	for _, e := range alloc.Expenses {
		if e.IsGroupScoped() {
			groupScoped = append(groupScoped, e)
		}
	}

	return &models.BuildingDivisionReport{
		BuildingID:                b.ID,
		BuildingName:              b.Name,
		Year:                      year,
		FromMonth:                 fromMonth,
		ToMonth:                   toMonth,
		TotalKirats:               b.TotalKirats,
		IncomeSummary:             *income,
		BuildingExpenses:          expenseLines(alloc.BuildingExpenses, b),
		BuildingExpensesTotal:     alloc.BuildingExpensesTotal,
		ProportionalExpensesTotal: alloc.ProportionalTotal,
		NetAfterProportional:      netAfterProportional,
		NetIncome:                 income.TotalIncome.Sub(alloc.BuildingExpensesTotal),
		Groups:                    DistributeRevenue(b, netAfterProportional, alloc),
		GroupExpenses:             expenseLines(groupScoped, b),
	}, nil
}

// BuildPersonReport consolidates what a person nets for a year across every
// building they are a member of. buildings may also contain buildings where
// the person only rents; those contribute to RentedProperties only.
func BuildPersonReport(person *models.Person, buildings []models.BuildingData, year int) (*models.PersonConsolidatedReport, error) {
	report := &models.PersonConsolidatedReport{
		PersonID:         person.ID,
		PersonName:       person.DisplayName,
		Year:             year,
		Buildings:        []models.PersonBuildingShare{},
		RentedProperties: []models.RentedProperty{},
	}

	for i := range buildings {
		data := &buildings[i]
		report.RentedProperties = append(report.RentedProperties, rentedProperties(person.ID, data, year)...)

		if !data.Building.HasMember(person.ID) {
			continue
		}
		share, err := personBuildingShare(person.ID, data, year)
		if err != nil {
			return nil, err
		}
		report.Buildings = append(report.Buildings, *share)

		report.Summary.GrossIncome = report.Summary.GrossIncome.Add(share.GrossIncome)
		report.Summary.EqualExpenses = report.Summary.EqualExpenses.Add(share.EqualExpenses)
		report.Summary.RentDeduction = report.Summary.RentDeduction.Add(share.RentDeduction)
		report.Summary.NetIncome = report.Summary.NetIncome.Add(share.NetIncome)
	}

	return report, nil
}

func personBuildingShare(personID string, data *models.BuildingData, year int) (*models.PersonBuildingShare, error) {
	income, err := AggregatePeriod(data.Properties, data.Payments, year, 1, 12)
	if err != nil {
		return nil, err
	}
	alloc, err := AllocateExpenses(data.Expenses, year)
	if err != nil {
		return nil, err
	}

	b := &data.Building
	netAfterProportional := income.TotalIncome.Sub(alloc.ProportionalTotal)

	// A person may appear in more than one group, or more than once in a group.
	userKirats := 0
	buildingHeads := 0
	groupHeads := make(map[string]int)
	var groupNames []string
	for _, g := range b.OwnerGroups {
		for _, m := range g.Members {
			if m.UserID != personID {
				continue
			}
			userKirats += m.Kirats
			buildingHeads++
			if groupHeads[g.ID] == 0 {
				groupNames = append(groupNames, g.Name)
			}
			groupHeads[g.ID]++
		}
	}

	share := &models.PersonBuildingShare{
		BuildingID:          b.ID,
		BuildingName:        b.Name,
		TotalKirats:         b.TotalKirats,
		UserKirats:          userKirats,
		OwnershipPercentage: percentage(userKirats, b.TotalKirats),
		Groups:              groupNames,
		GrossIncome:         kiratShare(userKirats, b.TotalKirats, netAfterProportional),
		ExpenseDetails:      []models.PersonExpenseDetail{},
		RentDeduction:       RentDeduction(personID, data.Properties, data.Payments, year),
	}

	buildingMembers := b.MemberCount()
	for _, e := range alloc.Expenses {
		if e.ExpenseType != models.ExpenseEqual {
			continue
		}

		var part decimal.Decimal
		var groupName string
		if e.OwnerGroupID == "" {
			part = perHead(e.Amount, buildingHeads, buildingMembers)
		} else {
			g, ok := b.FindGroup(e.OwnerGroupID)
			if !ok || groupHeads[g.ID] == 0 {
				continue
			}
			part = perHead(e.Amount, groupHeads[g.ID], len(g.Members))
			groupName = g.Name
		}

		share.EqualExpenses = share.EqualExpenses.Add(part)
		share.ExpenseDetails = append(share.ExpenseDetails, models.PersonExpenseDetail{
			ExpenseID:    e.ID,
			Description:  e.Description,
			Amount:       e.Amount,
			Share:        part,
			OwnerGroupID: e.OwnerGroupID,
			GroupName:    groupName,
		})
	}

	share.NetIncome = share.GrossIncome.Sub(share.EqualExpenses).Sub(share.RentDeduction)
	return share, nil
}
