package bootstrap

import (
	"github.com/ronin-framework/ronin/logger"
	"github.com/ronin-framework/ronin/router"
	"github.com/ronin-framework/ronin/version"
)

// Application is the entry-point contract units registered under the
// conf.App convention must satisfy. Both callbacks run synchronously on
// the booting goroutine; a panic in either aborts the lifecycle
// transition in progress.
type Application interface {
	// OnFrameworkStart runs after the container and routes are ready,
	// before Boot returns.
	OnFrameworkStart()
	// OnFrameworkShutdown runs at the beginning of Shutdown, before
	// hooks stop and the container closes.
	OnFrameworkShutdown()
}

// ApplicationRoutes is the contract for units registered under the
// conf.Routes convention. Init declares routes against the router; the
// framework compiles them afterwards.
type ApplicationRoutes interface {
	Init(r *router.Router)
}

// DefaultApplication is used when the application registers no conf.App
// unit. It logs a start banner and is otherwise inert.
type DefaultApplication struct {
	Name string
}

func (a *DefaultApplication) OnFrameworkStart() {
	logger.Info("application started",
		logger.Fields("application", a.Name, "version", version.GetShortVersion()))
}

func (a *DefaultApplication) OnFrameworkShutdown() {
	logger.Info("application stopped", logger.Fields("application", a.Name))
}
