package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/internal/models"
	"github.com/mmynk/kirat/internal/storage"
	"github.com/mmynk/kirat/pkg/api"
)

// LedgerService implements the Connect LedgerService. It records the
// buildings, properties, payments and expenses that reports are built from.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// CreateBuilding creates a building with its ownership tree.
func (s *LedgerService) CreateBuilding(ctx context.Context, req *connect.Request[api.CreateBuildingRequest]) (*connect.Response[api.CreateBuildingResponse], error) {
	slog.Info("CreateBuilding request received",
		"name", req.Msg.Name,
		"total_kirats", req.Msg.TotalKirats,
		"groups_count", len(req.Msg.OwnerGroups),
	)

	if strings.TrimSpace(req.Msg.Name) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name is required"))
	}

	totalKirats := req.Msg.TotalKirats
	if totalKirats == 0 {
		totalKirats = models.DefaultTotalKirats
	}
	building := &models.Building{
		Name:        req.Msg.Name,
		Address:     req.Msg.Address,
		TotalKirats: totalKirats,
		OwnerGroups: fromAPIGroups(req.Msg.OwnerGroups),
	}
	if err := models.ValidateOwnership(building); err != nil {
		return nil, toConnectError("CreateBuilding", err)
	}

	if err := s.store.CreateBuilding(ctx, building); err != nil {
		return nil, toConnectError("CreateBuilding", err)
	}

	slog.Info("Building created", "building_id", building.ID)

	return connect.NewResponse(&api.CreateBuildingResponse{
		Building: toAPIBuilding(building),
	}), nil
}

// GetBuilding retrieves a building by ID.
func (s *LedgerService) GetBuilding(ctx context.Context, req *connect.Request[api.GetBuildingRequest]) (*connect.Response[api.GetBuildingResponse], error) {
	slog.Info("GetBuilding request received", "building_id", req.Msg.BuildingID)

	building, err := s.store.GetBuilding(ctx, req.Msg.BuildingID)
	if err != nil {
		return nil, toConnectError("GetBuilding", err)
	}

	return connect.NewResponse(&api.GetBuildingResponse{
		Building: toAPIBuilding(building),
	}), nil
}

// ListBuildings retrieves all buildings.
func (s *LedgerService) ListBuildings(ctx context.Context, req *connect.Request[api.ListBuildingsRequest]) (*connect.Response[api.ListBuildingsResponse], error) {
	slog.Info("ListBuildings request received")

	buildings, err := s.store.ListBuildings(ctx)
	if err != nil {
		return nil, toConnectError("ListBuildings", err)
	}

	out := make([]*api.Building, len(buildings))
	for i, b := range buildings {
		out[i] = toAPIBuilding(b)
	}

	slog.Info("ListBuildings successful", "count", len(out))

	return connect.NewResponse(&api.ListBuildingsResponse{Buildings: out}), nil
}

// UpdateOwnership replaces a building's total kirats and owner groups.
func (s *LedgerService) UpdateOwnership(ctx context.Context, req *connect.Request[api.UpdateOwnershipRequest]) (*connect.Response[api.UpdateOwnershipResponse], error) {
	slog.Info("UpdateOwnership request received",
		"building_id", req.Msg.BuildingID,
		"total_kirats", req.Msg.TotalKirats,
		"groups_count", len(req.Msg.OwnerGroups),
	)

	building := &models.Building{
		ID:          req.Msg.BuildingID,
		TotalKirats: req.Msg.TotalKirats,
		OwnerGroups: fromAPIGroups(req.Msg.OwnerGroups),
	}
	if err := models.ValidateOwnership(building); err != nil {
		return nil, toConnectError("UpdateOwnership", err)
	}

	if err := s.store.UpdateOwnership(ctx, building); err != nil {
		return nil, toConnectError("UpdateOwnership", err)
	}

	updated, err := s.store.GetBuilding(ctx, building.ID)
	if err != nil {
		return nil, toConnectError("UpdateOwnership", err)
	}

	slog.Info("Ownership updated", "building_id", updated.ID, "groups_count", len(updated.OwnerGroups))

	return connect.NewResponse(&api.UpdateOwnershipResponse{
		Building: toAPIBuilding(updated),
	}), nil
}

// CreateProperty adds a property to an existing building.
func (s *LedgerService) CreateProperty(ctx context.Context, req *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error) {
	slog.Info("CreateProperty request received",
		"building_id", req.Msg.BuildingID,
		"unit", req.Msg.Unit,
		"type", req.Msg.Type,
	)

	property := &models.Property{
		BuildingID:  req.Msg.BuildingID,
		Unit:        strings.TrimSpace(req.Msg.Unit),
		Type:        models.PropertyType(req.Msg.Type),
		PaymentType: models.PaymentType(req.Msg.PaymentType),
		FixedRent:   req.Msg.FixedRent,
		RenterID:    req.Msg.RenterID,
	}
	if property.PaymentType == "" {
		property.PaymentType = models.PaymentFlexible
	}

	if property.Unit == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unit is required"))
	}
	if !property.Type.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown property type %q", req.Msg.Type))
	}
	if !property.PaymentType.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown payment type %q", req.Msg.PaymentType))
	}
	if property.FixedRent.IsNegative() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("fixed rent must not be negative"))
	}

	if err := s.store.CreateProperty(ctx, property); err != nil {
		return nil, toConnectError("CreateProperty", err)
	}

	slog.Info("Property created", "property_id", property.ID, "building_id", property.BuildingID)

	return connect.NewResponse(&api.CreatePropertyResponse{
		Property: toAPIProperty(property),
	}), nil
}

// RecordPayment records the rent paid for a property in one month,
// replacing any earlier amount for that month.
func (s *LedgerService) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	slog.Info("RecordPayment request received",
		"property_id", req.Msg.PropertyID,
		"year", req.Msg.Year,
		"month", req.Msg.Month,
		"amount", req.Msg.Amount.String(),
	)

	if err := validateYear(req.Msg.Year); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if req.Msg.Month < 1 || req.Msg.Month > 12 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("month must be between 1 and 12, got %d", req.Msg.Month))
	}
	if req.Msg.Amount.IsNegative() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must not be negative"))
	}

	payment := &models.Payment{
		PropertyID: req.Msg.PropertyID,
		Year:       req.Msg.Year,
		Month:      req.Msg.Month,
		Amount:     req.Msg.Amount,
	}
	if err := s.store.RecordPayment(ctx, payment); err != nil {
		return nil, toConnectError("RecordPayment", err)
	}

	return connect.NewResponse(&api.RecordPaymentResponse{}), nil
}

// CreateExpense records a building expense for a year.
func (s *LedgerService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"building_id", req.Msg.BuildingID,
		"year", req.Msg.Year,
		"type", req.Msg.ExpenseType,
		"amount", req.Msg.Amount.String(),
	)

	expense := &models.Expense{
		BuildingID:   req.Msg.BuildingID,
		Year:         req.Msg.Year,
		Description:  req.Msg.Description,
		Amount:       req.Msg.Amount,
		ExpenseType:  models.ExpenseType(req.Msg.ExpenseType),
		OwnerGroupID: req.Msg.OwnerGroupID,
	}

	if err := validateYear(expense.Year); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if !expense.ExpenseType.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown expense type %q", req.Msg.ExpenseType))
	}
	if expense.Amount.IsNegative() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must not be negative"))
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, toConnectError("CreateExpense", err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "building_id", expense.BuildingID)

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// GetPerson retrieves a person with the buildings they own and the
// properties they rent.
func (s *LedgerService) GetPerson(ctx context.Context, req *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error) {
	slog.Info("GetPerson request received", "person_id", req.Msg.PersonID)

	person, err := s.store.GetPerson(ctx, req.Msg.PersonID)
	if err != nil {
		return nil, toConnectError("GetPerson", err)
	}

	return connect.NewResponse(&api.GetPersonResponse{
		Person: toAPIPerson(person),
	}), nil
}
