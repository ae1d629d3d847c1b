package bootstrap

import (
	"fmt"

	"github.com/ronin-framework/ronin/config"
	"github.com/ronin-framework/ronin/di"
	"github.com/ronin-framework/ronin/engine"
	"github.com/ronin-framework/ronin/lifecycle"
	"github.com/ronin-framework/ronin/logger"
	"github.com/ronin-framework/ronin/router"
	"github.com/ronin-framework/ronin/scheduler"
)

// frameworkBase binds the core framework services every application
// sees: the property set, the typed framework config, the logger, the
// router and the default engine registries.
type frameworkBase struct {
	props *config.Properties
	cfg   *config.FrameworkConfig
}

func (m *frameworkBase) Configure(b *di.Binder) {
	b.BindSingleton(di.Framework.Properties, m.props)
	b.BindSingleton(di.Framework.Config, m.cfg)
	b.BindSingleton(di.Framework.Logger, logger.GetGlobalLogger())
	b.Bind(di.Framework.Router, func() *router.Router {
		return router.New()
	})
	b.Bind(di.Framework.TemplateEngines, func() *engine.TemplateRegistry {
		return engine.DefaultTemplateRegistry(nil)
	})
	b.Bind(di.Framework.BodyParserEngines, func() *engine.BodyParserRegistry {
		return engine.DefaultBodyParserRegistry()
	})
}

// contextDefaults binds the request-context factory the router uses when
// wrapping handlers. Applications override the binding to put their own
// context type in front of every handler.
type contextDefaults struct{}

func (contextDefaults) Configure(b *di.Binder) {
	b.BindSingleton(di.Framework.Context, router.ContextFactory(router.NewContext))
}

// appModule binds the application entry point as a singleton.
type appModule struct {
	app Application
}

func (m *appModule) Configure(b *di.Binder) {
	b.BindSingleton(di.Framework.Application, m.app)
}

// assembleModules produces the complete, ordered module list fed to the
// container in a single di.New call. The order is fixed:
//
//  1. lifecycle support
//  2. scheduler support
//  3. framework base services
//  4. request-context binding
//  5. the application's conf.Module, when registered
//  6. exactly one dispatch module: the application's conf.DispatchModule
//     or the framework default
//  7. the application entry point from conf.App, or the default
//
// Later modules override earlier bindings, so the application's module
// may replace any framework binding by key.
func assembleModules(props *config.Properties, cfg *config.FrameworkConfig, conventions *Conventions) ([]di.Module, error) {
	prefix := cfg.Application.Modules.Package
	modules := []di.Module{
		lifecycle.Module(),
		scheduler.Module(),
		&frameworkBase{props: props, cfg: cfg},
		contextDefaults{},
	}

	name := ResolveConventionName(prefix, ModuleConvention)
	if conventions.Exists(name) {
		m, err := conventionModule(conventions, name)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}

	name = ResolveConventionName(prefix, DispatchConvention)
	if conventions.Exists(name) {
		m, err := conventionModule(conventions, name)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	} else {
		modules = append(modules, dispatchDefaults{})
	}

	app, err := resolveApplication(cfg, conventions, prefix)
	if err != nil {
		return nil, err
	}
	modules = append(modules, &appModule{app: app})

	return modules, nil
}

// conventionModule instantiates a convention unit expected to be a
// container module. A unit of the wrong shape is an application bug and
// fatal to the boot.
func conventionModule(conventions *Conventions, name string) (di.Module, error) {
	instance, err := conventions.Instantiate(name, nil)
	if err != nil {
		return nil, err
	}
	m, ok := instance.(di.Module)
	if !ok {
		return nil, fmt.Errorf("%s must implement di.Module, got %T", name, instance)
	}
	return m, nil
}

// resolveApplication instantiates the conf.App unit or falls back to the
// default application.
func resolveApplication(cfg *config.FrameworkConfig, conventions *Conventions, prefix string) (Application, error) {
	name := ResolveConventionName(prefix, AppConvention)
	if !conventions.Exists(name) {
		return &DefaultApplication{Name: cfg.Application.Name}, nil
	}
	instance, err := conventions.Instantiate(name, nil)
	if err != nil {
		return nil, err
	}
	app, ok := instance.(Application)
	if !ok {
		return nil, fmt.Errorf("%s must implement bootstrap.Application, got %T", name, instance)
	}
	return app, nil
}
