package engine

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin/binding"
)

// bindingParser adapts a gin binding to the BodyParserEngine interface.
type bindingParser struct {
	contentType string
	name        string
	binding     binding.Binding
}

func (p *bindingParser) ContentType() string { return p.contentType }

func (p *bindingParser) Name() string { return p.name }

func (p *bindingParser) Parse(r *http.Request, target interface{}) error {
	if err := p.binding.Bind(r, target); err != nil {
		return fmt.Errorf("%s body parse failed: %w", p.contentType, err)
	}
	return nil
}

// NewJSONBodyParser parses application/json request bodies.
func NewJSONBodyParser() BodyParserEngine {
	return &bindingParser{
		contentType: ContentTypeJSON,
		name:        "JSONBodyParserEngine",
		binding:     binding.JSON,
	}
}

// NewXMLBodyParser parses application/xml request bodies.
func NewXMLBodyParser() BodyParserEngine {
	return &bindingParser{
		contentType: ContentTypeXML,
		name:        "XMLBodyParserEngine",
		binding:     binding.XML,
	}
}

// NewFormBodyParser parses urlencoded form request bodies.
func NewFormBodyParser() BodyParserEngine {
	return &bindingParser{
		contentType: ContentTypeForm,
		name:        "FormBodyParserEngine",
		binding:     binding.Form,
	}
}

// DefaultBodyParserRegistry builds the registry of built-in parsers.
func DefaultBodyParserRegistry() *BodyParserRegistry {
	r := NewBodyParserRegistry()
	r.Register(NewJSONBodyParser())
	r.Register(NewXMLBodyParser())
	r.Register(NewFormBodyParser())
	return r
}
