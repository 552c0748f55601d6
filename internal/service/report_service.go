package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/kirat/internal/calculator"
	"github.com/mmynk/kirat/internal/metrics"
	"github.com/mmynk/kirat/internal/middleware"
	"github.com/mmynk/kirat/internal/models"
	"github.com/mmynk/kirat/internal/storage"
	"github.com/mmynk/kirat/pkg/api"
)

// maxConcurrentLoads bounds the building snapshots loaded in parallel for a
// person report.
const maxConcurrentLoads = 4

// ReportService implements the Connect ReportService.
type ReportService struct {
	loader  storage.DataLoader
	metrics *metrics.Metrics
}

// NewReportService creates a ReportService reading through loader.
// m may be nil when metrics are disabled.
func NewReportService(loader storage.DataLoader, m *metrics.Metrics) *ReportService {
	return &ReportService{loader: loader, metrics: m}
}

func validateYear(year int) error {
	if year < 1 {
		return fmt.Errorf("year must be positive, got %d", year)
	}
	return nil
}

// GetBuildingReport returns the yearly and division reports of one building.
func (s *ReportService) GetBuildingReport(ctx context.Context, req *connect.Request[api.GetBuildingReportRequest]) (*connect.Response[api.GetBuildingReportResponse], error) {
	fromMonth, toMonth := req.Msg.FromMonth, req.Msg.ToMonth
	if fromMonth == 0 {
		fromMonth = 1
	}
	if toMonth == 0 {
		toMonth = 12
	}

	slog.Info("GetBuildingReport request received",
		"building_id", req.Msg.BuildingID,
		"year", req.Msg.Year,
		"from_month", fromMonth,
		"to_month", toMonth,
	)

	if req.Msg.BuildingID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("building_id is required"))
	}
	if err := validateYear(req.Msg.Year); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if fromMonth < 1 || toMonth > 12 || fromMonth > toMonth {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("%w: %d..%d", calculator.ErrInvalidRange, fromMonth, toMonth))
	}

	data, err := s.loader.LoadBuildingData(ctx, req.Msg.BuildingID, req.Msg.Year)
	if err != nil {
		return nil, toConnectError("GetBuildingReport", err)
	}

	yearly, err := calculator.BuildYearlyReport(data, req.Msg.Year)
	if err != nil {
		return nil, toConnectError("GetBuildingReport", err)
	}
	division, err := calculator.BuildDivisionReport(data, req.Msg.Year, fromMonth, toMonth)
	if err != nil {
		return nil, toConnectError("GetBuildingReport", err)
	}

	if s.metrics != nil {
		s.metrics.RecordReport(metrics.ReportBuilding)
	}
	slog.Info("GetBuildingReport successful",
		"building_id", req.Msg.BuildingID,
		"net_income", division.NetIncome.String(),
		"groups", len(division.Groups),
	)

	return connect.NewResponse(&api.GetBuildingReportResponse{
		Yearly:   yearly,
		Division: division,
	}), nil
}

// GetPersonReport returns the consolidated report of a person for a year.
func (s *ReportService) GetPersonReport(ctx context.Context, req *connect.Request[api.GetPersonReportRequest]) (*connect.Response[api.GetPersonReportResponse], error) {
	slog.Info("GetPersonReport request received", "person_id", req.Msg.PersonID, "year", req.Msg.Year)

	if req.Msg.PersonID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("person_id is required"))
	}
	return s.personReport(ctx, req.Msg.PersonID, req.Msg.Year)
}

// GetMyReport returns the consolidated report of the authenticated person.
func (s *ReportService) GetMyReport(ctx context.Context, req *connect.Request[api.GetMyReportRequest]) (*connect.Response[api.GetPersonReportResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	slog.Info("GetMyReport request received", "user_id", userID, "year", req.Msg.Year)
	return s.personReport(ctx, userID, req.Msg.Year)
}

func (s *ReportService) personReport(ctx context.Context, personID string, year int) (*connect.Response[api.GetPersonReportResponse], error) {
	if err := validateYear(year); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	person, err := s.loader.GetPerson(ctx, personID)
	if err != nil {
		return nil, toConnectError("GetPersonReport", err)
	}

	buildings, err := s.loadPersonBuildings(ctx, personID, year)
	if err != nil {
		return nil, toConnectError("GetPersonReport", err)
	}

	report, err := calculator.BuildPersonReport(person, buildings, year)
	if err != nil {
		return nil, toConnectError("GetPersonReport", err)
	}

	if s.metrics != nil {
		s.metrics.RecordReport(metrics.ReportPerson)
		s.metrics.ObservePersonBuildings(len(buildings))
	}
	slog.Info("GetPersonReport successful",
		"person_id", personID,
		"buildings", len(report.Buildings),
		"rented", len(report.RentedProperties),
		"net_income", report.Summary.NetIncome.String(),
	)

	return connect.NewResponse(&api.GetPersonReportResponse{Report: report}), nil
}

// loadPersonBuildings loads the snapshot of every building the person owns
// in or rents from. The result keeps the order of the building IDs.
func (s *ReportService) loadPersonBuildings(ctx context.Context, personID string, year int) ([]models.BuildingData, error) {
	ids, err := s.loader.ListPersonBuildingIDs(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	buildings := make([]models.BuildingData, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, id := range ids {
		g.Go(func() error {
			data, err := s.loader.LoadBuildingData(gctx, id, year)
			if err != nil {
				return fmt.Errorf("failed to load building %s: %w", id, err)
			}
			buildings[i] = *data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildings, nil
}
