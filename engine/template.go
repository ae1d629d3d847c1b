package engine

import (
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"io"
)

// JSONTemplateEngine renders data as JSON. The template name is ignored.
type JSONTemplateEngine struct{}

// NewJSONTemplateEngine creates the JSON template engine.
func NewJSONTemplateEngine() *JSONTemplateEngine { return &JSONTemplateEngine{} }

func (e *JSONTemplateEngine) ContentType() string { return ContentTypeJSON }

func (e *JSONTemplateEngine) Name() string { return "JSONTemplateEngine" }

func (e *JSONTemplateEngine) Render(w io.Writer, _ string, data interface{}) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("json render failed: %w", err)
	}
	return nil
}

// HTMLTemplateEngine renders html/template templates looked up by name.
type HTMLTemplateEngine struct {
	templates *htmltemplate.Template
}

// NewHTMLTemplateEngine creates an HTML template engine over a parsed
// template set. A nil set is valid; rendering then fails per call.
func NewHTMLTemplateEngine(templates *htmltemplate.Template) *HTMLTemplateEngine {
	return &HTMLTemplateEngine{templates: templates}
}

func (e *HTMLTemplateEngine) ContentType() string { return ContentTypeHTML }

func (e *HTMLTemplateEngine) Name() string { return "HTMLTemplateEngine" }

func (e *HTMLTemplateEngine) Render(w io.Writer, template string, data interface{}) error {
	if e.templates == nil {
		return fmt.Errorf("no templates loaded, cannot render %q", template)
	}
	if err := e.templates.ExecuteTemplate(w, template, data); err != nil {
		return fmt.Errorf("html render of %q failed: %w", template, err)
	}
	return nil
}

// DefaultTemplateRegistry builds the registry the framework installs
// when the application does not supply its own engines.
func DefaultTemplateRegistry(templates *htmltemplate.Template) *TemplateRegistry {
	r := NewTemplateRegistry()
	r.Register(NewJSONTemplateEngine())
	r.Register(NewHTMLTemplateEngine(templates))
	return r
}
