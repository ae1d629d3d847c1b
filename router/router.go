package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ronin-framework/ronin/logger"
)

// Handler handles a single request through the framework's Context.
type Handler func(Context) error

// ContextFactory builds the Context handed to handlers. The framework
// binds the default gin-backed factory; applications may override the
// binding to enrich the request context.
type ContextFactory func(*gin.Context) Context

// Route is one entry of the route table: HTTP method, URI pattern and
// an optional controller reference. Routes serving framework or static
// content carry no controller reference.
type Route struct {
	Method           string
	URI              string
	ControllerName   string
	ControllerMethod string
	Handler          Handler
}

// HasController reports whether the route targets an application
// controller.
func (r Route) HasController() bool {
	return r.ControllerName != ""
}

// Router collects route declarations and compiles them onto the gin
// dispatch engine.
type Router struct {
	engine   *gin.Engine
	routes   []Route
	compiled bool
	factory  ContextFactory
	log      *logger.Logger
}

// New creates a router over a fresh gin engine.
func New() *Router {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.WithComponent("router")

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(accessLog(log))

	return &Router{
		engine:  engine,
		factory: NewContext,
		log:     log,
	}
}

// SetContextFactory replaces the factory used to build handler contexts.
// It must be called before CompileRoutes.
func (r *Router) SetContextFactory(f ContextFactory) {
	if f != nil {
		r.factory = f
	}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// RouteBuilder completes a single route declaration.
type RouteBuilder struct {
	router *Router
	method string
	uri    string
}

// GET starts a GET route declaration.
func (r *Router) GET(uri string) *RouteBuilder { return r.route(http.MethodGet, uri) }

// POST starts a POST route declaration.
func (r *Router) POST(uri string) *RouteBuilder { return r.route(http.MethodPost, uri) }

// PUT starts a PUT route declaration.
func (r *Router) PUT(uri string) *RouteBuilder { return r.route(http.MethodPut, uri) }

// DELETE starts a DELETE route declaration.
func (r *Router) DELETE(uri string) *RouteBuilder { return r.route(http.MethodDelete, uri) }

// PATCH starts a PATCH route declaration.
func (r *Router) PATCH(uri string) *RouteBuilder { return r.route(http.MethodPatch, uri) }

// HEAD starts a HEAD route declaration.
func (r *Router) HEAD(uri string) *RouteBuilder { return r.route(http.MethodHead, uri) }

// OPTIONS starts an OPTIONS route declaration.
func (r *Router) OPTIONS(uri string) *RouteBuilder { return r.route(http.MethodOptions, uri) }

func (r *Router) route(method, uri string) *RouteBuilder {
	return &RouteBuilder{router: r, method: method, uri: uri}
}

// With registers the route against a named controller method.
func (b *RouteBuilder) With(controller, method string, h Handler) {
	b.router.add(Route{
		Method:           b.method,
		URI:              b.uri,
		ControllerName:   controller,
		ControllerMethod: method,
		Handler:          h,
	})
}

// Handle registers a controller-less route, used for framework and
// static content.
func (b *RouteBuilder) Handle(h Handler) {
	b.router.add(Route{
		Method:  b.method,
		URI:     b.uri,
		Handler: h,
	})
}

func (r *Router) add(route Route) {
	r.routes = append(r.routes, route)
}

// Routes enumerates the route table in registration order.
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Compiled reports whether CompileRoutes has run.
func (r *Router) Compiled() bool {
	return r.compiled
}

// CompileRoutes finalizes the route table and mounts every handler on
// the gin engine. It must be called exactly once per boot; a second
// call is a usage error.
func (r *Router) CompileRoutes() error {
	if r.compiled {
		return fmt.Errorf("routes already compiled")
	}

	for _, route := range r.routes {
		if route.Handler == nil {
			continue
		}
		r.engine.Handle(route.Method, toGinPath(route.URI), r.wrap(route.Handler))
	}

	r.compiled = true
	r.log.Debug("Route table compiled", logger.Fields("routes", len(r.routes)))
	return nil
}

// wrap adapts a framework Handler to a gin handler.
func (r *Router) wrap(h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := r.factory(c)
		if err := h(ctx); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
		}
	}
}

// toGinPath converts {param} placeholders in URI patterns to gin's
// :param form.
func toGinPath(uri string) string {
	segments := strings.Split(uri, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = ":" + seg[1:len(seg)-1]
		}
	}
	return strings.Join(segments, "/")
}
