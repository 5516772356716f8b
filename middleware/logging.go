package middleware

import (
	"time"

	httprpc "github.com/jamillambert/http-rpc"
	"go.uber.org/zap"
)

// Logging records each call's verb, path and duration. Successful calls are
// logged at debug level, failures at info level with the error kind. The
// error is returned unchanged.
func Logging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next httprpc.Transport) httprpc.Transport {
		return httprpc.TransportFunc(func(m httprpc.Descriptor, req, resp any) error {
			start := time.Now()
			err := next.Request(m, req, resp)

			fields := []zap.Field{
				zap.String("verb", m.HTTPMethod()),
				zap.String("path", m.Path()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, zap.Stringer("kind", httprpc.KindOf(err)), zap.Error(err))
				logger.Info("rpc call failed", fields...)
				return err
			}
			logger.Debug("rpc call", fields...)
			return nil
		})
	}
}
