package api

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/kirat/internal/models"
)

// Building is the wire form of a building and its ownership tree.
type Building struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address,omitempty"`
	TotalKirats int          `json:"totalKirats"`
	OwnerGroups []OwnerGroup `json:"ownerGroups"`
	CreatedAt   int64        `json:"createdAt"`
}

// OwnerGroup is the wire form of an owner group.
type OwnerGroup struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Kirats  int      `json:"kirats"`
	Members []Member `json:"members"`
}

// Member is the wire form of a group member.
type Member struct {
	Name   string `json:"name"`
	Kirats int    `json:"kirats"`
	UserID string `json:"userId,omitempty"`
}

// Property is the wire form of a rentable unit.
type Property struct {
	ID          string          `json:"id"`
	BuildingID  string          `json:"buildingId"`
	Unit        string          `json:"unit"`
	Type        string          `json:"type"`
	PaymentType string          `json:"paymentType"`
	FixedRent   decimal.Decimal `json:"fixedRent"`
	RenterID    string          `json:"renterId,omitempty"`
}

// Expense is the wire form of a building expense.
type Expense struct {
	ID           string          `json:"id"`
	BuildingID   string          `json:"buildingId"`
	Year         int             `json:"year"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseType  string          `json:"expenseType"`
	OwnerGroupID string          `json:"ownerGroupId,omitempty"`
	CreatedAt    int64           `json:"createdAt"`
}

// Person is the public view of a person. The password hash never leaves the server.
type Person struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	DisplayName      string   `json:"displayName"`
	Phone            string   `json:"phone,omitempty"`
	BuildingsOwned   []string `json:"buildingsOwned,omitempty"`
	PropertiesRented []string `json:"propertiesRented,omitempty"`
	CreatedAt        int64    `json:"createdAt"`
}

// ReportService messages.

type GetBuildingReportRequest struct {
	BuildingID string `json:"buildingId"`
	Year       int    `json:"year"`
	// FromMonth and ToMonth default to 1 and 12 when zero.
	FromMonth int `json:"fromMonth,omitempty"`
	ToMonth   int `json:"toMonth,omitempty"`
}

type GetBuildingReportResponse struct {
	Yearly   *models.YearlyReport           `json:"yearly"`
	Division *models.BuildingDivisionReport `json:"division"`
}

type GetPersonReportRequest struct {
	PersonID string `json:"personId"`
	Year     int    `json:"year"`
}

type GetPersonReportResponse struct {
	Report *models.PersonConsolidatedReport `json:"report"`
}

type GetMyReportRequest struct {
	Year int `json:"year"`
}

// LedgerService messages.

type CreateBuildingRequest struct {
	Name        string       `json:"name"`
	Address     string       `json:"address,omitempty"`
	TotalKirats int          `json:"totalKirats"`
	OwnerGroups []OwnerGroup `json:"ownerGroups"`
}

type CreateBuildingResponse struct {
	Building *Building `json:"building"`
}

type GetBuildingRequest struct {
	BuildingID string `json:"buildingId"`
}

type GetBuildingResponse struct {
	Building *Building `json:"building"`
}

type ListBuildingsRequest struct{}

type ListBuildingsResponse struct {
	Buildings []*Building `json:"buildings"`
}

type UpdateOwnershipRequest struct {
	BuildingID  string       `json:"buildingId"`
	TotalKirats int          `json:"totalKirats"`
	OwnerGroups []OwnerGroup `json:"ownerGroups"`
}

type UpdateOwnershipResponse struct {
	Building *Building `json:"building"`
}

type CreatePropertyRequest struct {
	BuildingID  string          `json:"buildingId"`
	Unit        string          `json:"unit"`
	Type        string          `json:"type"`
	PaymentType string          `json:"paymentType"`
	FixedRent   decimal.Decimal `json:"fixedRent"`
	RenterID    string          `json:"renterId,omitempty"`
}

type CreatePropertyResponse struct {
	Property *Property `json:"property"`
}

type RecordPaymentRequest struct {
	PropertyID string          `json:"propertyId"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

type RecordPaymentResponse struct{}

type CreateExpenseRequest struct {
	BuildingID   string          `json:"buildingId"`
	Year         int             `json:"year"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseType  string          `json:"expenseType"`
	OwnerGroupID string          `json:"ownerGroupId,omitempty"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetPersonRequest struct {
	PersonID string `json:"personId"`
}

type GetPersonResponse struct {
	Person *Person `json:"person"`
}

// AuthService messages.

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	Person *Person `json:"person"`
	Token  string  `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Person *Person `json:"person"`
	Token  string  `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	Person *Person `json:"person"`
}
