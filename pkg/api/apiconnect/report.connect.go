package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/pkg/api"
)

// ReportServiceName is the fully-qualified name of the ReportService.
const ReportServiceName = "kirat.v1.ReportService"

// Procedure paths of the ReportService.
const (
	ReportServiceGetBuildingReportProcedure = "/kirat.v1.ReportService/GetBuildingReport"
	ReportServiceGetPersonReportProcedure   = "/kirat.v1.ReportService/GetPersonReport"
	ReportServiceGetMyReportProcedure       = "/kirat.v1.ReportService/GetMyReport"
)

// ReportServiceHandler is implemented by the server side of the ReportService.
type ReportServiceHandler interface {
	// GetBuildingReport returns the yearly and division reports of a building.
	GetBuildingReport(context.Context, *connect.Request[api.GetBuildingReportRequest]) (*connect.Response[api.GetBuildingReportResponse], error)
	// GetPersonReport returns the consolidated report of a person.
	GetPersonReport(context.Context, *connect.Request[api.GetPersonReportRequest]) (*connect.Response[api.GetPersonReportResponse], error)
	// GetMyReport returns the consolidated report of the caller.
	GetMyReport(context.Context, *connect.Request[api.GetMyReportRequest]) (*connect.Response[api.GetPersonReportResponse], error)
}

// NewReportServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewReportServiceHandler(svc ReportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	getBuildingReportHandler := connect.NewUnaryHandler(ReportServiceGetBuildingReportProcedure, svc.GetBuildingReport, opts...)
	getPersonReportHandler := connect.NewUnaryHandler(ReportServiceGetPersonReportProcedure, svc.GetPersonReport, opts...)
	getMyReportHandler := connect.NewUnaryHandler(ReportServiceGetMyReportProcedure, svc.GetMyReport, opts...)
	return "/kirat.v1.ReportService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReportServiceGetBuildingReportProcedure:
			getBuildingReportHandler.ServeHTTP(w, r)
		case ReportServiceGetPersonReportProcedure:
			getPersonReportHandler.ServeHTTP(w, r)
		case ReportServiceGetMyReportProcedure:
			getMyReportHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ReportServiceClient is a client for the ReportService.
type ReportServiceClient interface {
	GetBuildingReport(context.Context, *connect.Request[api.GetBuildingReportRequest]) (*connect.Response[api.GetBuildingReportResponse], error)
	GetPersonReport(context.Context, *connect.Request[api.GetPersonReportRequest]) (*connect.Response[api.GetPersonReportResponse], error)
	GetMyReport(context.Context, *connect.Request[api.GetMyReportRequest]) (*connect.Response[api.GetPersonReportResponse], error)
}

// NewReportServiceClient constructs a client for the ReportService. baseURL is the
// server's scheme and host, e.g. http://localhost:8080.
func NewReportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReportServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &reportServiceClient{
		getBuildingReport: connect.NewClient[api.GetBuildingReportRequest, api.GetBuildingReportResponse](
			httpClient,
			baseURL+ReportServiceGetBuildingReportProcedure,
			opts...,
		),
		getPersonReport: connect.NewClient[api.GetPersonReportRequest, api.GetPersonReportResponse](
			httpClient,
			baseURL+ReportServiceGetPersonReportProcedure,
			opts...,
		),
		getMyReport: connect.NewClient[api.GetMyReportRequest, api.GetPersonReportResponse](
			httpClient,
			baseURL+ReportServiceGetMyReportProcedure,
			opts...,
		),
	}
}

type reportServiceClient struct {
	getBuildingReport *connect.Client[api.GetBuildingReportRequest, api.GetBuildingReportResponse]
	getPersonReport   *connect.Client[api.GetPersonReportRequest, api.GetPersonReportResponse]
	getMyReport       *connect.Client[api.GetMyReportRequest, api.GetPersonReportResponse]
}

func (c *reportServiceClient) GetBuildingReport(ctx context.Context, req *connect.Request[api.GetBuildingReportRequest]) (*connect.Response[api.GetBuildingReportResponse], error) {
	return c.getBuildingReport.CallUnary(ctx, req)
}

func (c *reportServiceClient) GetPersonReport(ctx context.Context, req *connect.Request[api.GetPersonReportRequest]) (*connect.Response[api.GetPersonReportResponse], error) {
	return c.getPersonReport.CallUnary(ctx, req)
}

func (c *reportServiceClient) GetMyReport(ctx context.Context, req *connect.Request[api.GetMyReportRequest]) (*connect.Response[api.GetPersonReportResponse], error) {
	return c.getMyReport.CallUnary(ctx, req)
}
