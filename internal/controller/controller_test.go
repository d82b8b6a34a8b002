package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/agent"
	agentmocks "github.com/SCR01/chaintrace/internal/agent/mocks"
	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/compliance"
	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/controller"
	"github.com/SCR01/chaintrace/internal/trace"
	"github.com/SCR01/chaintrace/internal/utils/testapp"
	"github.com/SCR01/chaintrace/internal/utils/testutil"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

type controllerTestSuite struct {
	suite.Suite
	app        testapp.TestApp
	controller controller.Controller
	routes     map[string]controller.HandlerFn
}

var (
	now = testutil.MustTime("2024-05-01T12:00:00Z")
)

func TestNewController(t *testing.T) {
	testapp.TestAllConfigs(t, func(t *testing.T, cfg *config.Config) {
		require := testutil.Require(t)

		var ctrl controller.Controller
		app := testapp.New(
			t,
			testapp.WithConfig(cfg),
			agent.Module,
			trace.Module,
			compliance.Module,
			controller.Module,
			fx.Populate(&ctrl),
		)
		defer app.Close()

		require.NotNil(ctrl)
		require.Len(ctrl.Routes(), 3)
	})
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(controllerTestSuite))
}

func (s *controllerTestSuite) SetupTest() {
	s.app = testapp.New(
		s.T(),
		testapp.WithClock(timeutil.NewFixedClock(now)),
		agent.Module,
		trace.Module,
		compliance.Module,
		controller.Module,
		fx.Populate(&s.controller),
	)

	s.routes = make(map[string]controller.HandlerFn)
	for _, route := range s.controller.Routes() {
		s.routes[route.Method+" "+route.Path] = route.Handler
	}
}

func (s *controllerTestSuite) TearDownTest() {
	s.app.Close()
}

func (s *controllerTestSuite) call(method string, path string, body string) (interface{}, error) {
	handler, ok := s.routes[method+" "+path]
	s.Require().True(ok, "route not found: %v %v", method, path)
	return handler(context.Background(), json.RawMessage(body))
}

func (s *controllerTestSuite) TestRoutes() {
	require := testutil.Require(s.T())

	require.Contains(s.routes, "POST /trace")
	require.Contains(s.routes, "POST /compliance-report")
	require.Contains(s.routes, "GET /health")
}

func (s *controllerTestSuite) TestTrace() {
	require := testutil.Require(s.T())

	res, err := s.call(http.MethodPost, controller.PathTrace, `{"transaction_hash":"0xabc"}`)
	require.NoError(err)

	result, ok := res.(*api.TraceResult)
	require.True(ok)
	require.Equal("0xabc", result.TransactionHash)
	require.GreaterOrEqual(result.RiskScore, 30)
	require.LessOrEqual(result.RiskScore, 100)
	require.NotEmpty(result.Chains)
	require.Equal(len(result.Path), result.TotalHops)
	require.Equal(now.Unix(), result.AnalysisTimestamp)
}

func (s *controllerTestSuite) TestTrace_MissingHash() {
	for _, body := range []string{``, `{}`, `{"transaction_hash":""}`, `{"transaction_hash":null}`, `null`} {
		s.Run(body, func() {
			require := testutil.Require(s.T())

			_, err := s.call(http.MethodPost, controller.PathTrace, body)
			require.Error(err)

			serverErr := api.AsServerError(err)
			require.Equal(api.ValidationError, serverErr.Kind())
			require.Equal(http.StatusBadRequest, serverErr.HTTPStatus())
			require.Equal("Transaction hash is required", serverErr.Message())
		})
	}
}

func (s *controllerTestSuite) TestTrace_MalformedBody() {
	for _, body := range []string{`{`, `{not json`, `{"transaction_hash":123}`, `[]`} {
		s.Run(body, func() {
			require := testutil.Require(s.T())

			_, err := s.call(http.MethodPost, controller.PathTrace, body)
			require.Error(err)

			serverErr := api.AsServerError(err)
			require.Equal(api.InternalError, serverErr.Kind())
			require.Equal(http.StatusInternalServerError, serverErr.HTTPStatus())
			require.Contains(serverErr.Message(), "failed to decode request body")
		})
	}
}

func (s *controllerTestSuite) TestComplianceReport() {
	require := testutil.Require(s.T())

	body := `{"trace_results":{"risk_score":85,"chains":["Ethereum","Polygon","Arbitrum"],"suspicious_activities":["Mixer Usage"]}}`
	res, err := s.call(http.MethodPost, controller.PathComplianceReport, body)
	require.NoError(err)

	report, ok := res.(*api.ComplianceReport)
	require.True(ok)
	require.Equal(api.ComplianceStatusRequiresInvestigation, report.ComplianceStatus)
	require.Equal(api.StatusColorRed, report.StatusColor)
	require.Equal(85, report.RiskScore)
	require.Equal([]string{"Mixer Usage"}, report.RegulatoryFlags)
	require.Contains(report.Recommendations, compliance.RecommendationInvestigateMixer)
	require.Contains(report.Recommendations, compliance.RecommendationMultiChain)
	require.Equal(now.Unix(), report.GeneratedAt)
}

func (s *controllerTestSuite) TestComplianceReport_MissingTraceResults() {
	require := testutil.Require(s.T())

	for _, body := range []string{``, `{}`} {
		res, err := s.call(http.MethodPost, controller.PathComplianceReport, body)
		require.NoError(err)

		report := res.(*api.ComplianceReport)
		require.Equal(api.ComplianceStatusLowRisk, report.ComplianceStatus)
		require.Equal(0, report.RiskScore)
		require.Equal([]string{compliance.RecommendationMonitor}, report.Recommendations)
		require.Empty(report.RegulatoryFlags)
	}
}

func (s *controllerTestSuite) TestComplianceReport_MalformedBody() {
	for _, body := range []string{`{"trace_results":{"risk_score":"high"}}`, `{not json`, `{"trace_results":[]}`} {
		s.Run(body, func() {
			require := testutil.Require(s.T())

			_, err := s.call(http.MethodPost, controller.PathComplianceReport, body)
			require.Error(err)

			serverErr := api.AsServerError(err)
			require.Equal(api.InternalError, serverErr.Kind())
			require.Equal(http.StatusInternalServerError, serverErr.HTTPStatus())
			require.Contains(serverErr.Message(), "failed to decode request body")
		})
	}
}

func (s *controllerTestSuite) TestHealth() {
	require := testutil.Require(s.T())

	res, err := s.call(http.MethodGet, controller.PathHealth, ``)
	require.NoError(err)
	require.Equal(&api.HealthStatus{
		Status:    api.StatusHealthy,
		Service:   s.app.Config().Server.ServiceName,
		Timestamp: now.Unix(),
	}, res)
}

func TestTrace_AgentFailure(t *testing.T) {
	require := testutil.Require(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errUnavailable := xerrors.New("node unavailable")
	mockAgent := agentmocks.NewMockAgent(ctrl)
	mockAgent.EXPECT().CollectBlockchainData(gomock.Any(), "0xabc", gomock.Any()).Return(nil, errUnavailable)

	var c controller.Controller
	app := testapp.New(
		t,
		trace.Module,
		compliance.Module,
		controller.Module,
		fx.Provide(func() agent.Agent { return mockAgent }),
		fx.Populate(&c),
	)
	defer app.Close()

	var traceHandler controller.HandlerFn
	for _, route := range c.Routes() {
		if route.Path == controller.PathTrace {
			traceHandler = route.Handler
		}
	}
	require.NotNil(traceHandler)

	_, err := traceHandler(context.Background(), json.RawMessage(`{"transaction_hash":"0xabc"}`))
	require.Error(err)
	require.ErrorIs(err, errUnavailable)

	serverErr := api.AsServerError(err)
	require.Equal(api.InternalError, serverErr.Kind())
	require.Equal(http.StatusInternalServerError, serverErr.HTTPStatus())
	require.Contains(serverErr.Message(), "node unavailable")
}
