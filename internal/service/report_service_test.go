package service

import (
	"bytes"
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/kirat/pkg/api"
)

func assertAmount(t *testing.T, what, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}

// scenario records a 24-kirat building shared 12/12 by Hana and Omar.
// The apartment pays 500 every month, Omar's shop pays 1000 each quarter,
// and the building carries a 1000 proportional tax and a 200 equal expense.
type scenario struct {
	server     *testServer
	hanaID     string
	hanaToken  string
	omarID     string
	omarToken  string
	buildingID string
	shopID     string
}

func setupScenario(t *testing.T) *scenario {
	t.Helper()
	ctx := context.Background()

	s := &scenario{server: setupTestServer(t)}
	s.hanaID, s.hanaToken = s.server.register(t, "hana@example.com", "Hana")
	s.omarID, s.omarToken = s.server.register(t, "omar@example.com", "Omar")
	ledger := s.server.ledger(s.hanaToken)

	b, err := ledger.CreateBuilding(ctx, connect.NewRequest(&api.CreateBuildingRequest{
		Name:        "Nile Tower",
		TotalKirats: 24,
		OwnerGroups: []api.OwnerGroup{
			{Name: "Family", Kirats: 24, Members: []api.Member{
				{Name: "Hana", Kirats: 12, UserID: s.hanaID},
				{Name: "Omar", Kirats: 12, UserID: s.omarID},
			}},
		},
	}))
	if err != nil {
		t.Fatalf("CreateBuilding failed: %v", err)
	}
	s.buildingID = b.Msg.Building.ID
	groupID := b.Msg.Building.OwnerGroups[0].ID

	apt, err := ledger.CreateProperty(ctx, connect.NewRequest(&api.CreatePropertyRequest{
		BuildingID:  s.buildingID,
		Unit:        "1",
		Type:        "apartment",
		PaymentType: "fixed",
		FixedRent:   decimal.NewFromInt(600),
	}))
	if err != nil {
		t.Fatalf("CreateProperty(apartment) failed: %v", err)
	}
	shop, err := ledger.CreateProperty(ctx, connect.NewRequest(&api.CreatePropertyRequest{
		BuildingID: s.buildingID,
		Unit:       "S1",
		Type:       "store",
		RenterID:   s.omarID,
	}))
	if err != nil {
		t.Fatalf("CreateProperty(store) failed: %v", err)
	}
	s.shopID = shop.Msg.Property.ID

	for month := 1; month <= 12; month++ {
		s.pay(t, apt.Msg.Property.ID, month, 500)
	}
	for _, month := range []int{3, 6, 9, 12} {
		s.pay(t, s.shopID, month, 1000)
	}

	expenses := []*api.CreateExpenseRequest{
		{BuildingID: s.buildingID, Year: 2024, Description: "Property tax", Amount: decimal.NewFromInt(1000), ExpenseType: "proportional"},
		{BuildingID: s.buildingID, Year: 2024, Description: "Stairs", Amount: decimal.NewFromInt(200), ExpenseType: "equal", OwnerGroupID: groupID},
	}
	for _, e := range expenses {
		if _, err := ledger.CreateExpense(ctx, connect.NewRequest(e)); err != nil {
			t.Fatalf("CreateExpense(%s) failed: %v", e.Description, err)
		}
	}

	return s
}

func (s *scenario) pay(t *testing.T, propertyID string, month, amount int) {
	t.Helper()

	_, err := s.server.ledger(s.hanaToken).RecordPayment(context.Background(), connect.NewRequest(&api.RecordPaymentRequest{
		PropertyID: propertyID,
		Year:       2024,
		Month:      month,
		Amount:     decimal.NewFromInt(int64(amount)),
	}))
	if err != nil {
		t.Fatalf("RecordPayment(%s, %d) failed: %v", propertyID, month, err)
	}
}

func TestGetBuildingReport(t *testing.T) {
	s := setupScenario(t)

	resp, err := s.server.reports(s.hanaToken).GetBuildingReport(context.Background(), connect.NewRequest(&api.GetBuildingReportRequest{
		BuildingID: s.buildingID,
		Year:       2024,
	}))
	if err != nil {
		t.Fatalf("GetBuildingReport failed: %v", err)
	}

	yearly := resp.Msg.Yearly
	assertAmount(t, "yearly total income", "10000", yearly.TotalIncome)
	assertAmount(t, "yearly total expenses", "1200", yearly.TotalExpenses)
	assertAmount(t, "yearly net income", "8800", yearly.NetIncome)

	division := resp.Msg.Division
	if division.FromMonth != 1 || division.ToMonth != 12 {
		t.Errorf("range = %d..%d, want default 1..12", division.FromMonth, division.ToMonth)
	}
	assertAmount(t, "net after proportional", "9000", division.NetAfterProportional)
	assertAmount(t, "division net income", "9000", division.NetIncome)

	if len(division.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(division.Groups))
	}
	group := division.Groups[0]
	assertAmount(t, "group share", "9000", group.GroupShare)
	assertAmount(t, "net group share", "8800", group.NetGroupShare)
	if len(group.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(group.Members))
	}
	for _, m := range group.Members {
		assertAmount(t, m.Name+" net share", "4400", m.NetShare)
	}
}

func TestGetBuildingReport_MonthRange(t *testing.T) {
	s := setupScenario(t)

	resp, err := s.server.reports(s.hanaToken).GetBuildingReport(context.Background(), connect.NewRequest(&api.GetBuildingReportRequest{
		BuildingID: s.buildingID,
		Year:       2024,
		FromMonth:  1,
		ToMonth:    3,
	}))
	if err != nil {
		t.Fatalf("GetBuildingReport failed: %v", err)
	}

	// 3 months of apartment rent plus the March shop payment
	assertAmount(t, "period income", "2500", resp.Msg.Division.TotalIncome)
	// The yearly view ignores the requested range
	assertAmount(t, "yearly income", "10000", resp.Msg.Yearly.TotalIncome)
}

func TestGetBuildingReport_Idempotent(t *testing.T) {
	s := setupScenario(t)
	client := s.server.reports(s.hanaToken)
	req := &api.GetBuildingReportRequest{BuildingID: s.buildingID, Year: 2024}

	first, err := client.GetBuildingReport(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("first GetBuildingReport failed: %v", err)
	}
	second, err := client.GetBuildingReport(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("second GetBuildingReport failed: %v", err)
	}

	a, _ := api.Codec{}.Marshal(first.Msg)
	b, _ := api.Codec{}.Marshal(second.Msg)
	if !bytes.Equal(a, b) {
		t.Errorf("reports differ between calls:\n%s\n%s", a, b)
	}
}

func TestGetBuildingReport_Errors(t *testing.T) {
	s := setupScenario(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		token  string
		req    *api.GetBuildingReportRequest
		expect connect.Code
	}{
		{
			name:   "unknown building",
			token:  s.hanaToken,
			req:    &api.GetBuildingReportRequest{BuildingID: "missing", Year: 2024},
			expect: connect.CodeNotFound,
		},
		{
			name:   "reversed month range",
			token:  s.hanaToken,
			req:    &api.GetBuildingReportRequest{BuildingID: s.buildingID, Year: 2024, FromMonth: 5, ToMonth: 2},
			expect: connect.CodeInvalidArgument,
		},
		{
			name:   "month out of range",
			token:  s.hanaToken,
			req:    &api.GetBuildingReportRequest{BuildingID: s.buildingID, Year: 2024, FromMonth: 1, ToMonth: 13},
			expect: connect.CodeInvalidArgument,
		},
		{
			name:   "missing year",
			token:  s.hanaToken,
			req:    &api.GetBuildingReportRequest{BuildingID: s.buildingID},
			expect: connect.CodeInvalidArgument,
		},
		{
			name:   "bad token",
			token:  "not-a-token",
			req:    &api.GetBuildingReportRequest{BuildingID: s.buildingID, Year: 2024},
			expect: connect.CodeUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.server.reports(tt.token).GetBuildingReport(ctx, connect.NewRequest(tt.req))
			requireCode(t, err, tt.expect)
		})
	}
}

func TestGetPersonReport(t *testing.T) {
	s := setupScenario(t)

	resp, err := s.server.reports(s.hanaToken).GetPersonReport(context.Background(), connect.NewRequest(&api.GetPersonReportRequest{
		PersonID: s.omarID,
		Year:     2024,
	}))
	if err != nil {
		t.Fatalf("GetPersonReport failed: %v", err)
	}

	report := resp.Msg.Report
	if report.PersonName != "Omar" {
		t.Errorf("PersonName = %q, want Omar", report.PersonName)
	}
	if len(report.Buildings) != 1 {
		t.Fatalf("expected 1 building, got %d", len(report.Buildings))
	}
	share := report.Buildings[0]
	assertAmount(t, "gross income", "4500", share.GrossIncome)
	assertAmount(t, "equal expenses", "100", share.EqualExpenses)
	assertAmount(t, "rent deduction", "4000", share.RentDeduction)
	assertAmount(t, "net income", "400", share.NetIncome)

	if len(report.RentedProperties) != 1 || report.RentedProperties[0].PropertyID != s.shopID {
		t.Fatalf("expected the shop in rented properties, got %+v", report.RentedProperties)
	}
	assertAmount(t, "summary net income", "400", report.Summary.NetIncome)
}

func TestGetPersonReport_RentIncreaseLowersNet(t *testing.T) {
	s := setupScenario(t)
	client := s.server.reports(s.hanaToken)
	req := &api.GetPersonReportRequest{PersonID: s.omarID, Year: 2024}

	before, err := client.GetPersonReport(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("GetPersonReport failed: %v", err)
	}

	// Omar pays 250 more for March: his share of income rises by 125
	// through his kirats, his rent deduction by the full 250.
	s.pay(t, s.shopID, 3, 1250)

	after, err := client.GetPersonReport(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("GetPersonReport failed: %v", err)
	}

	diff := before.Msg.Report.Summary.NetIncome.Sub(after.Msg.Report.Summary.NetIncome)
	assertAmount(t, "net income drop", "125", diff)
	assertAmount(t, "rent deduction", "4250", after.Msg.Report.Summary.RentDeduction)
}

func TestGetMyReport(t *testing.T) {
	s := setupScenario(t)

	resp, err := s.server.reports(s.hanaToken).GetMyReport(context.Background(), connect.NewRequest(&api.GetMyReportRequest{
		Year: 2024,
	}))
	if err != nil {
		t.Fatalf("GetMyReport failed: %v", err)
	}

	report := resp.Msg.Report
	if report.PersonID != s.hanaID {
		t.Errorf("PersonID = %q, want %q", report.PersonID, s.hanaID)
	}
	if len(report.RentedProperties) != 0 {
		t.Errorf("Hana rents nothing, got %d rented properties", len(report.RentedProperties))
	}
	assertAmount(t, "net income", "4400", report.Summary.NetIncome)
}

func TestGetPersonReport_Errors(t *testing.T) {
	s := setupScenario(t)
	client := s.server.reports(s.hanaToken)
	ctx := context.Background()

	_, err := client.GetPersonReport(ctx, connect.NewRequest(&api.GetPersonReportRequest{PersonID: "nobody", Year: 2024}))
	requireCode(t, err, connect.CodeNotFound)

	_, err = client.GetPersonReport(ctx, connect.NewRequest(&api.GetPersonReportRequest{Year: 2024}))
	requireCode(t, err, connect.CodeInvalidArgument)

	_, err = s.server.reports("").GetMyReport(ctx, connect.NewRequest(&api.GetMyReportRequest{Year: 2024}))
	requireCode(t, err, connect.CodeUnauthenticated)
}
