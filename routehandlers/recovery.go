package routehandlers

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vitalvas/routux/router"
)

// ErrPanic wraps the value recovered from a panicking middleware.
var ErrPanic = errors.New("recovery: middleware panicked")

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// LogFunc is an optional callback invoked with the request and the
	// recovered value when a panic occurs.
	LogFunc func(req *router.Request, err any)

	// Logger, when set, receives an error entry with the stack of the
	// panic.
	Logger *zap.Logger
}

// RecoveryMiddleware returns a middleware that recovers from panics in the
// middlewares that follow it. The recovered value is wrapped in ErrPanic
// and passed down the chain, so the next error handler receives it.
// Register it first to cover the whole chain.
func RecoveryMiddleware(cfg RecoveryConfig) router.Middleware {
	return router.Handler(func(req *router.Request, next router.Next) {
		var recovered error

		func() {
			defer func() {
				v := recover()
				if v == nil {
					return
				}

				if cfg.LogFunc != nil {
					cfg.LogFunc(req, v)
				}
				if cfg.Logger != nil {
					cfg.Logger.Error("middleware panicked",
						zap.String("request_id", req.ID),
						zap.String("path", req.Current),
						zap.Any("panic", v),
						zap.Stack("stack"),
					)
				}

				recovered = panicError(v)
			}()

			next(nil)
		}()

		if recovered != nil {
			next(recovered)
		}
	})
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, v)
}
