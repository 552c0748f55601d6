package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService.
const LedgerServiceName = "kirat.v1.LedgerService"

// Procedure paths of the LedgerService.
const (
	LedgerServiceCreateBuildingProcedure  = "/kirat.v1.LedgerService/CreateBuilding"
	LedgerServiceGetBuildingProcedure     = "/kirat.v1.LedgerService/GetBuilding"
	LedgerServiceListBuildingsProcedure   = "/kirat.v1.LedgerService/ListBuildings"
	LedgerServiceUpdateOwnershipProcedure = "/kirat.v1.LedgerService/UpdateOwnership"
	LedgerServiceCreatePropertyProcedure  = "/kirat.v1.LedgerService/CreateProperty"
	LedgerServiceRecordPaymentProcedure   = "/kirat.v1.LedgerService/RecordPayment"
	LedgerServiceCreateExpenseProcedure   = "/kirat.v1.LedgerService/CreateExpense"
	LedgerServiceGetPersonProcedure       = "/kirat.v1.LedgerService/GetPerson"
)

// LedgerServiceHandler is implemented by the server side of the LedgerService.
type LedgerServiceHandler interface {
	// CreateBuilding creates a building with its ownership tree.
	CreateBuilding(context.Context, *connect.Request[api.CreateBuildingRequest]) (*connect.Response[api.CreateBuildingResponse], error)
	// GetBuilding returns a building.
	GetBuilding(context.Context, *connect.Request[api.GetBuildingRequest]) (*connect.Response[api.GetBuildingResponse], error)
	// ListBuildings returns all buildings.
	ListBuildings(context.Context, *connect.Request[api.ListBuildingsRequest]) (*connect.Response[api.ListBuildingsResponse], error)
	// UpdateOwnership replaces a building's ownership tree.
	UpdateOwnership(context.Context, *connect.Request[api.UpdateOwnershipRequest]) (*connect.Response[api.UpdateOwnershipResponse], error)
	// CreateProperty adds a property to a building.
	CreateProperty(context.Context, *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error)
	// RecordPayment records a monthly rent payment.
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
	// CreateExpense records a building expense.
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	// GetPerson returns a person with owned buildings and rented properties.
	GetPerson(context.Context, *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	createBuildingHandler := connect.NewUnaryHandler(LedgerServiceCreateBuildingProcedure, svc.CreateBuilding, opts...)
	getBuildingHandler := connect.NewUnaryHandler(LedgerServiceGetBuildingProcedure, svc.GetBuilding, opts...)
	listBuildingsHandler := connect.NewUnaryHandler(LedgerServiceListBuildingsProcedure, svc.ListBuildings, opts...)
	updateOwnershipHandler := connect.NewUnaryHandler(LedgerServiceUpdateOwnershipProcedure, svc.UpdateOwnership, opts...)
	createPropertyHandler := connect.NewUnaryHandler(LedgerServiceCreatePropertyProcedure, svc.CreateProperty, opts...)
	recordPaymentHandler := connect.NewUnaryHandler(LedgerServiceRecordPaymentProcedure, svc.RecordPayment, opts...)
	createExpenseHandler := connect.NewUnaryHandler(LedgerServiceCreateExpenseProcedure, svc.CreateExpense, opts...)
	getPersonHandler := connect.NewUnaryHandler(LedgerServiceGetPersonProcedure, svc.GetPerson, opts...)
	return "/kirat.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceCreateBuildingProcedure:
			createBuildingHandler.ServeHTTP(w, r)
		case LedgerServiceGetBuildingProcedure:
			getBuildingHandler.ServeHTTP(w, r)
		case LedgerServiceListBuildingsProcedure:
			listBuildingsHandler.ServeHTTP(w, r)
		case LedgerServiceUpdateOwnershipProcedure:
			updateOwnershipHandler.ServeHTTP(w, r)
		case LedgerServiceCreatePropertyProcedure:
			createPropertyHandler.ServeHTTP(w, r)
		case LedgerServiceRecordPaymentProcedure:
			recordPaymentHandler.ServeHTTP(w, r)
		case LedgerServiceCreateExpenseProcedure:
			createExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceGetPersonProcedure:
			getPersonHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// LedgerServiceClient is a client for the LedgerService.
type LedgerServiceClient interface {
	CreateBuilding(context.Context, *connect.Request[api.CreateBuildingRequest]) (*connect.Response[api.CreateBuildingResponse], error)
	GetBuilding(context.Context, *connect.Request[api.GetBuildingRequest]) (*connect.Response[api.GetBuildingResponse], error)
	ListBuildings(context.Context, *connect.Request[api.ListBuildingsRequest]) (*connect.Response[api.ListBuildingsResponse], error)
	UpdateOwnership(context.Context, *connect.Request[api.UpdateOwnershipRequest]) (*connect.Response[api.UpdateOwnershipResponse], error)
	CreateProperty(context.Context, *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error)
	RecordPayment(context.Context, *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error)
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	GetPerson(context.Context, *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error)
}

// NewLedgerServiceClient constructs a client for the LedgerService. baseURL is the
// server's scheme and host, e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &ledgerServiceClient{
		createBuilding: connect.NewClient[api.CreateBuildingRequest, api.CreateBuildingResponse](
			httpClient,
			baseURL+LedgerServiceCreateBuildingProcedure,
			opts...,
		),
		getBuilding: connect.NewClient[api.GetBuildingRequest, api.GetBuildingResponse](
			httpClient,
			baseURL+LedgerServiceGetBuildingProcedure,
			opts...,
		),
		listBuildings: connect.NewClient[api.ListBuildingsRequest, api.ListBuildingsResponse](
			httpClient,
			baseURL+LedgerServiceListBuildingsProcedure,
			opts...,
		),
		updateOwnership: connect.NewClient[api.UpdateOwnershipRequest, api.UpdateOwnershipResponse](
			httpClient,
			baseURL+LedgerServiceUpdateOwnershipProcedure,
			opts...,
		),
		createProperty: connect.NewClient[api.CreatePropertyRequest, api.CreatePropertyResponse](
			httpClient,
			baseURL+LedgerServiceCreatePropertyProcedure,
			opts...,
		),
		recordPayment: connect.NewClient[api.RecordPaymentRequest, api.RecordPaymentResponse](
			httpClient,
			baseURL+LedgerServiceRecordPaymentProcedure,
			opts...,
		),
		createExpense: connect.NewClient[api.CreateExpenseRequest, api.CreateExpenseResponse](
			httpClient,
			baseURL+LedgerServiceCreateExpenseProcedure,
			opts...,
		),
		getPerson: connect.NewClient[api.GetPersonRequest, api.GetPersonResponse](
			httpClient,
			baseURL+LedgerServiceGetPersonProcedure,
			opts...,
		),
	}
}

type ledgerServiceClient struct {
	createBuilding  *connect.Client[api.CreateBuildingRequest, api.CreateBuildingResponse]
	getBuilding     *connect.Client[api.GetBuildingRequest, api.GetBuildingResponse]
	listBuildings   *connect.Client[api.ListBuildingsRequest, api.ListBuildingsResponse]
	updateOwnership *connect.Client[api.UpdateOwnershipRequest, api.UpdateOwnershipResponse]
	createProperty  *connect.Client[api.CreatePropertyRequest, api.CreatePropertyResponse]
	recordPayment   *connect.Client[api.RecordPaymentRequest, api.RecordPaymentResponse]
	createExpense   *connect.Client[api.CreateExpenseRequest, api.CreateExpenseResponse]
	getPerson       *connect.Client[api.GetPersonRequest, api.GetPersonResponse]
}

func (c *ledgerServiceClient) CreateBuilding(ctx context.Context, req *connect.Request[api.CreateBuildingRequest]) (*connect.Response[api.CreateBuildingResponse], error) {
	return c.createBuilding.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBuilding(ctx context.Context, req *connect.Request[api.GetBuildingRequest]) (*connect.Response[api.GetBuildingResponse], error) {
	return c.getBuilding.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListBuildings(ctx context.Context, req *connect.Request[api.ListBuildingsRequest]) (*connect.Response[api.ListBuildingsResponse], error) {
	return c.listBuildings.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateOwnership(ctx context.Context, req *connect.Request[api.UpdateOwnershipRequest]) (*connect.Response[api.UpdateOwnershipResponse], error) {
	return c.updateOwnership.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateProperty(ctx context.Context, req *connect.Request[api.CreatePropertyRequest]) (*connect.Response[api.CreatePropertyResponse], error) {
	return c.createProperty.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordPayment(ctx context.Context, req *connect.Request[api.RecordPaymentRequest]) (*connect.Response[api.RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetPerson(ctx context.Context, req *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error) {
	return c.getPerson.CallUnary(ctx, req)
}
