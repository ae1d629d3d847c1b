package engine

import (
	"sort"

	"github.com/ronin-framework/ronin/util"
)

// TemplateRegistry maps content types to template engines. It is built
// during container assembly and read-only afterwards.
type TemplateRegistry struct {
	engines map[string]TemplateEngine
}

// NewTemplateRegistry creates an empty template engine registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{engines: make(map[string]TemplateEngine)}
}

// Register adds an engine, replacing any engine already registered for
// the same content type.
func (r *TemplateRegistry) Register(e TemplateEngine) {
	r.engines[e.ContentType()] = e
}

// ContentTypes returns all registered content types in sorted order.
func (r *TemplateRegistry) ContentTypes() []string {
	types := util.Keys(r.engines)
	sort.Strings(types)
	return types
}

// For returns the engine registered for contentType, or nil.
func (r *TemplateRegistry) For(contentType string) TemplateEngine {
	return r.engines[contentType]
}

// BodyParserRegistry maps content types to body-parser engines.
type BodyParserRegistry struct {
	engines map[string]BodyParserEngine
}

// NewBodyParserRegistry creates an empty body-parser registry.
func NewBodyParserRegistry() *BodyParserRegistry {
	return &BodyParserRegistry{engines: make(map[string]BodyParserEngine)}
}

// Register adds an engine, replacing any engine already registered for
// the same content type.
func (r *BodyParserRegistry) Register(e BodyParserEngine) {
	r.engines[e.ContentType()] = e
}

// ContentTypes returns all registered content types in sorted order.
func (r *BodyParserRegistry) ContentTypes() []string {
	types := util.Keys(r.engines)
	sort.Strings(types)
	return types
}

// For returns the engine registered for contentType, or nil.
func (r *BodyParserRegistry) For(contentType string) BodyParserEngine {
	return r.engines[contentType]
}
