package router

// Kind tells normal handlers and error handlers apart.
type Kind int

// Middleware kinds.
const (
	// KindHandler runs while no error is in flight.
	KindHandler Kind = iota
	// KindErrorHandler runs only while an error is in flight.
	KindErrorHandler
)

func (k Kind) String() string {
	switch k {
	case KindHandler:
		return "handler"
	case KindErrorHandler:
		return "error handler"
	default:
		return "unknown"
	}
}

// Next continues the chain. A nil error resumes normal handlers, a non-nil
// error skips to the next error handler.
type Next func(err error)

// HandlerFunc handles a dispatch cycle while no error is in flight.
type HandlerFunc func(req *Request, next Next)

// ErrorHandlerFunc handles the error in flight.
type ErrorHandlerFunc func(err error, req *Request, next Next)

// Middleware is one link of a route's chain: either a HandlerFunc or an
// ErrorHandlerFunc, tagged with its Kind.
type Middleware struct {
	kind         Kind
	handler      HandlerFunc
	errorHandler ErrorHandlerFunc
}

// Handler wraps fn as a normal middleware.
func Handler(fn HandlerFunc) Middleware {
	return Middleware{kind: KindHandler, handler: fn}
}

// ErrorHandler wraps fn as an error-handling middleware.
func ErrorHandler(fn ErrorHandlerFunc) Middleware {
	return Middleware{kind: KindErrorHandler, errorHandler: fn}
}

// Kind returns the middleware kind.
func (m Middleware) Kind() Kind {
	return m.kind
}

func (m Middleware) valid() bool {
	switch m.kind {
	case KindHandler:
		return m.handler != nil
	case KindErrorHandler:
		return m.errorHandler != nil
	default:
		return false
	}
}

// Call invokes m the way the chain would: a handler when err is nil, an
// error handler when it is not. A middleware of the other kind is skipped
// by calling next(err). It lets middlewares wrap other middlewares.
func (m Middleware) Call(err error, req *Request, next Next) {
	switch {
	case m.kind == KindHandler && err == nil && m.handler != nil:
		m.handler(req, next)
	case m.kind == KindErrorHandler && err != nil && m.errorHandler != nil:
		m.errorHandler(err, req, next)
	default:
		next(err)
	}
}
