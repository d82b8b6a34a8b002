package server

import (
	"context"

	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/utils/instrument"
	"github.com/SCR01/chaintrace/internal/utils/log"
)

const (
	methodField = "method"
)

func newInstrumentInterceptor(calls map[string]instrument.Call) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		call, ok := calls[info.FullMethod]
		if !ok {
			return handler(ctx, req)
		}

		var res interface{}
		err := call.Instrument(
			ctx,
			func(ctx context.Context) error {
				v, err := handler(ctx, req)
				if err != nil {
					return err
				}

				res = v
				return nil
			},
			instrument.WithLoggerFields(
				zap.String("request_id", RequestIDFromContext(ctx)),
			),
		)
		return res, err
	}
}

// newRecoveryInterceptor converts a panic in the handler into an internal error.
func newRecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return grpc_recovery.UnaryServerInterceptor(
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p interface{}) error {
			log.WithSpan(ctx, logger).Error(
				"recovered from panic",
				zap.Any("panic", p),
				zap.String("request_id", RequestIDFromContext(ctx)),
				zap.Stack("stack"),
			)
			return api.NewInternalError(xerrors.Errorf("panic: %v", p))
		}),
	)
}

func newInstrument(method string, scope tally.Scope, logger *zap.Logger) instrument.Call {
	return instrument.NewCall(
		scope.Tagged(map[string]string{methodField: method}),
		"request",
		instrument.WithLogger(logger.With(zap.String(methodField, method)), loggerMsg),
		instrument.WithFilter(isClientError),
	)
}

func isClientError(err error) bool {
	var serverErr *api.ServerError
	if !xerrors.As(err, &serverErr) {
		return false
	}

	return serverErr.Kind() == api.ValidationError
}
