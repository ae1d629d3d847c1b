package engine

import (
	"io"
	"net/http"
)

// Well-known content types.
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"
	ContentTypeXML  = "application/xml"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// TemplateEngine renders responses for a single content type.
type TemplateEngine interface {
	// ContentType returns the content type this engine serves.
	ContentType() string
	// Name returns the engine's display name for diagnostics.
	Name() string
	// Render writes the rendered template to w.
	Render(w io.Writer, template string, data interface{}) error
}

// BodyParserEngine parses request bodies of a single content type.
type BodyParserEngine interface {
	// ContentType returns the content type this engine parses.
	ContentType() string
	// Name returns the engine's display name for diagnostics.
	Name() string
	// Parse decodes the request body into target.
	Parse(r *http.Request, target interface{}) error
}
