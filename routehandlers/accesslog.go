package routehandlers

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vitalvas/routux/router"
)

// AccessLogConfig configures the AccessLog middleware behaviour.
type AccessLogConfig struct {
	// Logger receives one entry per dispatch cycle. Required.
	Logger *zap.Logger

	// Level of the entries. Defaults to info.
	Level zapcore.Level

	// Message of the entries. Defaults to "dispatch".
	Message string
}

// AccessLogMiddleware returns a middleware that logs each dispatch cycle
// once the middlewares after it returned: request ID, path, matched
// routes, parameters and the time spent in the rest of the chain.
//
// It returns ErrNoLogger when cfg.Logger is nil.
func AccessLogMiddleware(cfg AccessLogConfig) (router.Middleware, error) {
	if cfg.Logger == nil {
		return router.Middleware{}, ErrNoLogger
	}

	msg := cfg.Message
	if msg == "" {
		msg = "dispatch"
	}

	logger := cfg.Logger
	level := cfg.Level

	return router.Handler(func(req *router.Request, next router.Next) {
		var matched []string
		if route := req.Route(); route != nil {
			for _, m := range route.Router().Matches() {
				matched = append(matched, m.Name())
			}
		}

		start := time.Now()

		next(nil)

		ce := logger.Check(level, msg)
		if ce == nil {
			return
		}

		ce.Write(
			zap.String("request_id", req.ID),
			zap.String("path", req.Current),
			zap.Strings("routes", matched),
			zap.Any("params", map[string]string(req.Params)),
			zap.String("query", req.Query.Encode()),
			zap.Duration("duration", time.Since(start)),
		)
	}), nil
}
