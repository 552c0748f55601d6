package middleware

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/internal/metrics"
)

// MetricsInterceptor returns a Connect interceptor that records the outcome
// and duration of every RPC call.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeUnknown.String()
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					code = connectErr.Code().String()
				}
			}
			m.RecordRPC(req.Spec().Procedure, code, time.Since(start))

			return resp, err
		}
	}
}
