package service

import (
	"github.com/mmynk/kirat/internal/models"
	"github.com/mmynk/kirat/pkg/api"
)

func toAPIBuilding(b *models.Building) *api.Building {
	groups := make([]api.OwnerGroup, len(b.OwnerGroups))
	for i, g := range b.OwnerGroups {
		members := make([]api.Member, len(g.Members))
		for j, m := range g.Members {
			members[j] = api.Member{Name: m.Name, Kirats: m.Kirats, UserID: m.UserID}
		}
		groups[i] = api.OwnerGroup{ID: g.ID, Name: g.Name, Kirats: g.Kirats, Members: members}
	}
	return &api.Building{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		TotalKirats: b.TotalKirats,
		OwnerGroups: groups,
		CreatedAt:   b.CreatedAt,
	}
}

func fromAPIGroups(groups []api.OwnerGroup) []models.OwnerGroup {
	out := make([]models.OwnerGroup, len(groups))
	for i, g := range groups {
		members := make([]models.Member, len(g.Members))
		for j, m := range g.Members {
			members[j] = models.Member{Name: m.Name, Kirats: m.Kirats, UserID: m.UserID}
		}
		out[i] = models.OwnerGroup{ID: g.ID, Name: g.Name, Kirats: g.Kirats, Members: members}
	}
	return out
}

func toAPIProperty(p *models.Property) *api.Property {
	return &api.Property{
		ID:          p.ID,
		BuildingID:  p.BuildingID,
		Unit:        p.Unit,
		Type:        string(p.Type),
		PaymentType: string(p.PaymentType),
		FixedRent:   p.FixedRent,
		RenterID:    p.RenterID,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:           e.ID,
		BuildingID:   e.BuildingID,
		Year:         e.Year,
		Description:  e.Description,
		Amount:       e.Amount,
		ExpenseType:  string(e.ExpenseType),
		OwnerGroupID: e.OwnerGroupID,
		CreatedAt:    e.CreatedAt,
	}
}

func toAPIPerson(p *models.Person) *api.Person {
	return &api.Person{
		ID:               p.ID,
		Email:            p.Email,
		DisplayName:      p.DisplayName,
		Phone:            p.Phone,
		BuildingsOwned:   p.BuildingsOwned,
		PropertiesRented: p.PropertiesRented,
		CreatedAt:        p.CreatedAt,
	}
}
