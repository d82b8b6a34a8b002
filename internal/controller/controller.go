package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/compliance"
	"github.com/SCR01/chaintrace/internal/trace"
	"github.com/SCR01/chaintrace/internal/utils/fxparams"
	"github.com/SCR01/chaintrace/internal/utils/jsonutil"
	"github.com/SCR01/chaintrace/internal/utils/log"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

//go:generate mockgen -destination=mocks/mocks.go -package=controllermocks github.com/SCR01/chaintrace/internal/controller Controller

type (
	// Controller is a facade to the routes served over HTTP.
	Controller interface {
		Routes() []*Route
	}

	// HandlerFn handles the raw request body and returns the value encoded as the response body.
	// Errors are expected to be *api.ServerError; anything else is reported as an internal error.
	HandlerFn func(ctx context.Context, body json.RawMessage) (interface{}, error)

	Route struct {
		Method  string
		Path    string
		Handler HandlerFn
	}

	ControllerParams struct {
		fx.In
		fxparams.Params
		Pipeline  trace.Pipeline
		Generator compliance.Generator
		Clock     timeutil.Clock
	}

	controller struct {
		logger      *zap.Logger
		pipeline    trace.Pipeline
		generator   compliance.Generator
		clock       timeutil.Clock
		serviceName string
		validate    *validator.Validate
	}
)

const (
	PathTrace            = "/trace"
	PathComplianceReport = "/compliance-report"
	PathHealth           = "/health"
)

func NewController(params ControllerParams) Controller {
	return &controller{
		logger:      log.WithPackage(params.Logger),
		pipeline:    params.Pipeline,
		generator:   params.Generator,
		clock:       params.Clock,
		serviceName: params.Config.Server.ServiceName,
		validate:    validator.New(),
	}
}

func (c *controller) Routes() []*Route {
	return []*Route{
		{Method: http.MethodPost, Path: PathTrace, Handler: c.Trace},
		{Method: http.MethodPost, Path: PathComplianceReport, Handler: c.ComplianceReport},
		{Method: http.MethodGet, Path: PathHealth, Handler: c.Health},
	}
}

func (c *controller) Trace(ctx context.Context, body json.RawMessage) (interface{}, error) {
	// Only a missing or empty hash is a validation error; an undecodable body is an internal error.
	var request api.TraceRequest
	if err := jsonutil.UnmarshalBody(body, &request); err != nil {
		return nil, api.NewInternalError(err)
	}

	if err := c.validate.Struct(&request); err != nil {
		return nil, api.NewValidationError(api.ErrTransactionHashRequired)
	}

	result, err := c.pipeline.Trace(ctx, request.TransactionHash)
	if err != nil {
		return nil, c.mapError(err)
	}

	return result, nil
}

func (c *controller) ComplianceReport(ctx context.Context, body json.RawMessage) (interface{}, error) {
	var request api.ComplianceReportRequest
	if err := jsonutil.UnmarshalBody(body, &request); err != nil {
		return nil, api.NewInternalError(err)
	}

	return c.generator.Generate(ctx, request.TraceResults), nil
}

func (c *controller) Health(ctx context.Context, body json.RawMessage) (interface{}, error) {
	return &api.HealthStatus{
		Status:    api.StatusHealthy,
		Service:   c.serviceName,
		Timestamp: c.clock.Now().Unix(),
	}, nil
}

func (c *controller) mapError(err error) error {
	if xerrors.Is(err, context.Canceled) {
		return api.NewServerError(api.StatusCanceled, err)
	}

	return api.NewInternalError(err)
}
