package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/controller"
	"github.com/SCR01/chaintrace/internal/utils/constants"
	"github.com/SCR01/chaintrace/internal/utils/fxparams"
	"github.com/SCR01/chaintrace/internal/utils/instrument"
	"github.com/SCR01/chaintrace/internal/utils/log"
)

type (
	ServerParams struct {
		fx.In
		fxparams.Params
		Lifecycle  fx.Lifecycle
		Controller controller.Controller
	}

	Server struct {
		logger      *zap.Logger
		config      *config.Config
		scope       tally.Scope
		router      chi.Router
		handler     http.Handler
		httpServer  *http.Server
		listener    net.Listener
		interceptor grpc.UnaryServerInterceptor
		calls       map[string]instrument.Call
	}
)

const (
	scopeName = "server"
	loggerMsg = "server.request"
	spanName  = "http.request"
)

var (
	_ http.Handler = (*Server)(nil)
)

func NewServer(params ServerParams) (*Server, error) {
	logger := log.WithPackage(params.Logger)
	cfg := params.Config

	server := &Server{
		logger: logger,
		config: cfg,
		scope:  params.Metrics.SubScope(scopeName),
		router: chi.NewRouter(),
		calls:  make(map[string]instrument.Call),
	}

	server.interceptor = middleware.ChainUnaryServer(
		newInstrumentInterceptor(server.calls),
		newRecoveryInterceptor(logger),
	)

	server.router.Use(WithRequestID, server.accessLog)
	server.router.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		server.writeError(writer, api.NewServerError(http.StatusNotFound, nil))
	})
	server.router.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		server.writeError(writer, api.NewServerError(http.StatusMethodNotAllowed, nil))
	})

	prefixes := []string{""}
	if prefix := cfg.Server.RoutePrefix; prefix != "" {
		prefixes = append(prefixes, prefix)
	}
	for _, route := range params.Controller.Routes() {
		if route == nil || route.Handler == nil {
			return nil, xerrors.New("route handler is not defined")
		}

		for _, prefix := range prefixes {
			server.registerRoute(prefix, route)
		}
	}

	server.handler = httptrace.WrapHandler(server.router, constants.ServiceName, spanName)
	server.httpServer = &http.Server{
		Handler:           server.handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ErrorLog:          log.NewStandard(logger),
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: server.onStart,
		OnStop:  server.onStop,
	})

	return server, nil
}

func (s *Server) onStart(ctx context.Context) error {
	address := s.config.Server.BindAddress
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return xerrors.Errorf("failed to listen on %v: %w", address, err)
	}

	s.listener = listener
	s.logger.Info("starting server", zap.String("address", listener.Addr().String()))

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !xerrors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server stopped unexpectedly", zap.Error(err))
		}
	}()

	return nil
}

func (s *Server) onStop(ctx context.Context) error {
	s.logger.Info("stopping server")

	ctx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return xerrors.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

// Addr returns the address the server is listening on, or nil before the server is started.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

func (s *Server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	s.handler.ServeHTTP(writer, request)
}

func (s *Server) registerRoute(prefix string, route *controller.Route) {
	// Since the method name cannot contain "/", replace it with "_".
	method := strings.ReplaceAll(
		strings.TrimPrefix(route.Path, "/"),
		"/",
		"_",
	)
	serverInfo := &grpc.UnaryServerInfo{
		FullMethod: fmt.Sprintf("/%v/%v", constants.FullServiceName, method),
	}
	if _, ok := s.calls[serverInfo.FullMethod]; !ok {
		s.calls[serverInfo.FullMethod] = newInstrument(method, s.scope, s.logger)
	}

	handler := route.Handler
	s.router.Method(route.Method, prefix+route.Path, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestInterceptor := NewRequestInterceptor(writer, request, s.config.Server.MaxRequestSize)
		req := requestInterceptor.Body()
		ctx := request.Context()

		res, err := s.interceptor(ctx, req, serverInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
			if err := requestInterceptor.Err(); err != nil {
				return nil, err
			}

			return handler(ctx, requestInterceptor.Body())
		})
		if err != nil {
			s.writeError(writer, err)
			return
		}

		s.writeJSON(writer, http.StatusOK, res)
	}))
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		responseInterceptor := NewResponseInterceptor(writer)
		next.ServeHTTP(responseInterceptor, request)

		log.WithSpan(request.Context(), s.logger).Debug(
			"access",
			zap.String("method", request.Method),
			zap.String("path", request.URL.Path),
			zap.Int("status", responseInterceptor.StatusCode()),
			zap.Int("bytes", responseInterceptor.BytesWritten()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", RequestIDFromContext(request.Context())),
		)
	})
}

func (s *Server) writeError(writer http.ResponseWriter, err error) {
	// Any error other than a ServerError, e.g. a recovered panic, is reported as an internal error.
	serverErr := api.AsServerError(err)
	s.writeJSON(writer, serverErr.HTTPStatus(), &api.ErrorResponse{Error: serverErr.Message()})
}

func (s *Server) writeJSON(writer http.ResponseWriter, statusCode int, body interface{}) {
	writer.Header().Set("Content-Type", constants.ContentTypeJSON)
	writer.WriteHeader(statusCode)
	if err := json.NewEncoder(writer).Encode(body); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}
