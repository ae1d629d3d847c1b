package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context is the request-context abstraction handed to route handlers.
// The framework binds it to the gin-backed implementation; applications
// may override the binding with their own.
type Context interface {
	// Method returns the HTTP method of the request.
	Method() string
	// Path returns the matched request path.
	Path() string
	// Param returns a path parameter by name.
	Param(name string) string
	// Query returns a query parameter by name.
	Query(name string) string
	// RequestID returns the unique ID assigned to this request.
	RequestID() string
	// Request returns the underlying HTTP request.
	Request() *http.Request
	// Writer returns the response writer.
	Writer() http.ResponseWriter
}

// requestContext is the gin-backed Context implementation.
type requestContext struct {
	gin       *gin.Context
	requestID string
}

// NewContext wraps a gin context. The request ID is taken from the
// X-Request-ID header when present, otherwise generated, and echoed on
// the response so clients and the access log can correlate.
func NewContext(c *gin.Context) Context {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Writer.Header().Set("X-Request-ID", id)
	return &requestContext{gin: c, requestID: id}
}

func (c *requestContext) Method() string { return c.gin.Request.Method }

func (c *requestContext) Path() string { return c.gin.FullPath() }

func (c *requestContext) Param(name string) string { return c.gin.Param(name) }

func (c *requestContext) Query(name string) string { return c.gin.Query(name) }

func (c *requestContext) RequestID() string { return c.requestID }

func (c *requestContext) Request() *http.Request { return c.gin.Request }

func (c *requestContext) Writer() http.ResponseWriter { return c.gin.Writer }
