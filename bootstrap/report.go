package bootstrap

import (
	"fmt"
	"strings"

	"github.com/ronin-framework/ronin/engine"
	"github.com/ronin-framework/ronin/logger"
	"github.com/ronin-framework/ronin/router"
	"github.com/ronin-framework/ronin/util"
)

// Reporter renders the tabular boot summary: the compiled routes, the
// registered template engines and the registered body-parser engines.
// Column widths are computed from the rows so every table stays aligned
// regardless of content.
type Reporter struct {
	log *logger.Logger
}

// NewReporter creates a reporter writing through the given logger.
func NewReporter(log *logger.Logger) *Reporter {
	return &Reporter{log: log}
}

// LogRoutes emits the registered-route table, one log line per row.
func (r *Reporter) LogRoutes(routes []router.Route) {
	for _, line := range formatRouteTable(routes) {
		r.log.Info(line)
	}
}

// LogTemplateEngines emits the template-engine table. An empty registry
// is almost always a wiring mistake and is reported at error level.
func (r *Reporter) LogTemplateEngines(reg *engine.TemplateRegistry) {
	contentTypes := reg.ContentTypes()
	if len(contentTypes) == 0 {
		r.log.Error("No template engines registered")
		return
	}
	rows := make([][2]string, 0, len(contentTypes))
	for _, ct := range contentTypes {
		rows = append(rows, [2]string{ct, reg.For(ct).Name()})
	}
	for _, line := range formatEngineTable("Registered template engines", rows) {
		r.log.Info(line)
	}
}

// LogBodyParserEngines emits the body-parser-engine table. An empty
// registry is a legal configuration and renders as a bare table.
func (r *Reporter) LogBodyParserEngines(reg *engine.BodyParserRegistry) {
	contentTypes := reg.ContentTypes()
	rows := make([][2]string, 0, len(contentTypes))
	for _, ct := range contentTypes {
		rows = append(rows, [2]string{ct, reg.For(ct).Name()})
	}
	for _, line := range formatEngineTable("Registered body parser engines", rows) {
		r.log.Info(line)
	}
}

// formatRouteTable renders the route rows with aligned method and URI
// columns. Rows with a controller get an "=>  Controller.method()"
// suffix; bare rows end after the URI.
func formatRouteTable(routes []router.Route) []string {
	maxMethod, maxURI, maxController := 0, 0, 0
	for _, rt := range routes {
		maxMethod = util.MaxInt(maxMethod, len(rt.Method))
		maxURI = util.MaxInt(maxURI, len(rt.URI))
		if rt.HasController() {
			maxController = util.MaxInt(maxController, len(rt.ControllerName)+len(rt.ControllerMethod)+3)
		}
	}

	border := strings.Repeat("-", 10+maxMethod+maxURI+maxController)
	lines := []string{border, "Registered routes", border}
	for _, rt := range routes {
		if rt.HasController() {
			lines = append(lines, fmt.Sprintf("%-*s %-*s  =>  %s.%s()",
				maxMethod, rt.Method, maxURI, rt.URI, rt.ControllerName, rt.ControllerMethod))
			continue
		}
		lines = append(lines, fmt.Sprintf("%-*s %s", maxMethod, rt.Method, rt.URI))
	}
	return append(lines, border)
}

// formatEngineTable renders a titled two-column table of content type
// and engine name.
func formatEngineTable(title string, rows [][2]string) []string {
	maxType, maxName := 0, 0
	for _, row := range rows {
		maxType = util.MaxInt(maxType, len(row[0]))
		maxName = util.MaxInt(maxName, len(row[1]))
	}

	border := strings.Repeat("-", 10+maxType+maxName)
	lines := []string{border, title, border}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-*s  =>  %s", maxType, row[0], row[1]))
	}
	return append(lines, border)
}
