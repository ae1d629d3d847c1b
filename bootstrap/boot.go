package bootstrap

import (
	"fmt"
	"sync"

	"github.com/ronin-framework/ronin/config"
	"github.com/ronin-framework/ronin/di"
	"github.com/ronin-framework/ronin/engine"
	"github.com/ronin-framework/ronin/lifecycle"
	"github.com/ronin-framework/ronin/logger"
)

// State is the lifecycle position of a Bootstrap.
type State int

const (
	// StateUnbooted means no container exists. The zero value.
	StateUnbooted State = iota
	// StateBooted means Boot completed and the container is live.
	StateBooted
)

func (s State) String() string {
	switch s {
	case StateUnbooted:
		return "unbooted"
	case StateBooted:
		return "booted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Bootstrap assembles the framework modules, creates the container,
// compiles routes and drives the application through its lifecycle. A
// Bootstrap boots at most once; a second Boot is an error and Shutdown
// returns it to the unbooted state.
type Bootstrap struct {
	mu          sync.Mutex
	props       *config.Properties
	conventions *Conventions
	container   *di.Container
	state       State
	log         *logger.Logger
}

// New creates an unbooted Bootstrap over the given property set. A nil
// property set gets an empty one, which boots with pure defaults.
func New(props *config.Properties) *Bootstrap {
	if props == nil {
		props = config.NewProperties()
	}
	return &Bootstrap{
		props:       props,
		conventions: NewConventions(),
		log:         logger.WithComponent("bootstrap"),
	}
}

// Conventions returns the registry applications use to install their
// conf.Module, conf.DispatchModule, conf.Routes and conf.App units
// before calling Boot.
func (b *Bootstrap) Conventions() *Conventions {
	return b.conventions
}

// Container returns the live container, or nil before Boot and after
// Shutdown.
func (b *Bootstrap) Container() *di.Container {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.container
}

// State returns the current lifecycle state.
func (b *Bootstrap) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Boot assembles the module list, creates the container in a single
// call, compiles routes, reports the engine tables, fires start hooks
// and notifies the application. Any failure is logged and leaves the
// Bootstrap unbooted with no container. Booting twice is an error.
func (b *Bootstrap) Boot() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.doBoot(); err != nil {
		b.log.Error("Boot failed", logger.ErrorFields("boot", err))
		return err
	}
	return nil
}

func (b *Bootstrap) doBoot() error {
	if b.state == StateBooted {
		return fmt.Errorf("bootstrap already booted, only one boot per instance is allowed")
	}

	cfg, err := config.FrameworkOf(b.props)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)
	b.log = logger.WithComponent("bootstrap")

	modules, err := assembleModules(b.props, cfg, b.conventions)
	if err != nil {
		return err
	}

	container, err := di.New(stageFor(cfg.Application.Mode), modules...)
	if err != nil {
		return err
	}

	// Development stage defers eager bindings, so the dispatcher and the
	// scheduler must be pulled explicitly: the dispatcher to get its
	// catch-all mounted, the scheduler to register its lifecycle hook
	// before the hooks start.
	if _, err := container.Resolve(di.Framework.Dispatcher); err != nil {
		return err
	}
	if _, err := container.Resolve(di.Framework.Scheduler); err != nil {
		return err
	}

	reporter := NewReporter(b.log)
	prefix := cfg.Application.Modules.Package
	if err := initRoutes(container, b.conventions, prefix, reporter); err != nil {
		return err
	}

	templates, err := di.Resolve[*engine.TemplateRegistry](container, di.Framework.TemplateEngines)
	if err != nil {
		return err
	}
	reporter.LogTemplateEngines(templates)

	parsers, err := di.Resolve[*engine.BodyParserRegistry](container, di.Framework.BodyParserEngines)
	if err != nil {
		return err
	}
	reporter.LogBodyParserEngines(parsers)

	hooks := di.MustResolve[*lifecycle.Support](container, di.Framework.Lifecycle)
	if err := hooks.Start(); err != nil {
		return err
	}

	b.container = container
	b.state = StateBooted

	app := di.MustResolve[Application](container, di.Framework.Application)
	app.OnFrameworkStart()

	b.log.Info("Framework booted", logger.Fields("application", cfg.Application.Name, "mode", cfg.Application.Mode))
	return nil
}

// Shutdown notifies the application, fires stop hooks in reverse order
// and closes the container. Shutdown before Boot is logged and ignored;
// after a Shutdown the Bootstrap is unbooted again.
func (b *Bootstrap) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateBooted {
		b.log.Error("Shutdown requested but framework never booted")
		return
	}

	if app, ok := di.TryResolve[Application](b.container, di.Framework.Application); ok {
		app.OnFrameworkShutdown()
	}

	if hooks, ok := di.TryResolve[*lifecycle.Support](b.container, di.Framework.Lifecycle); ok {
		if err := hooks.Stop(); err != nil {
			b.log.Error("Stop hooks failed", logger.ErrorFields("shutdown", err))
		}
	}

	if err := b.container.Close(); err != nil {
		b.log.Error("Container close failed", logger.ErrorFields("shutdown", err))
	}

	b.container = nil
	b.state = StateUnbooted
	b.log.Info("Framework stopped")
}

// stageFor maps the application mode to a container stage. Production
// mode validates every constructor and builds eager bindings up front;
// the development modes defer construction to first resolve.
func stageFor(mode string) di.Stage {
	if mode == config.ModeProd {
		return di.Production
	}
	return di.Development
}
