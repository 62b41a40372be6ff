package router

import "go.uber.org/zap"

// frame is a middleware together with the route it was registered on.
type frame struct {
	route *Route
	mw    Middleware
}

// dispatch drains the middleware stack of one cycle. Normal handlers are
// skipped while an error is in flight and error handlers while none is.
type dispatch struct {
	router *Router
	req    *Request
	stack  []frame
	pos    int
}

func (d *dispatch) next(err error) {
	for d.pos < len(d.stack) {
		f := d.stack[d.pos]
		d.pos++

		switch f.mw.kind {
		case KindHandler:
			if err != nil {
				continue
			}
			d.req.route = f.route
			f.mw.handler(d.req, d.advance)

		case KindErrorHandler:
			if err == nil {
				continue
			}
			d.req.route = f.route
			f.mw.errorHandler(err, d.req, d.advance)

		default:
			continue
		}

		return
	}

	if err != nil {
		d.router.dropError(d.req, err)
	}
}

func (d *dispatch) advance(err error) {
	d.next(err)
}

// dropError records an error nobody handled. The chain ends regardless.
func (r *Router) dropError(req *Request, err error) {
	r.metrics.unhandledError()
	r.logger.Warn("unhandled error at end of chain",
		zap.Int64("router_id", r.id),
		zap.String("request_id", req.ID),
		zap.String("path", req.Current),
		zap.Error(err),
	)
}
