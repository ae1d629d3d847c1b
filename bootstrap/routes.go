package bootstrap

import (
	"fmt"

	"github.com/ronin-framework/ronin/di"
	"github.com/ronin-framework/ronin/router"
)

// initRoutes instantiates the conf.Routes unit, lets it declare routes
// against the router and compiles the result. An application without a
// conf.Routes unit keeps an empty route table, which is valid.
func initRoutes(container *di.Container, conventions *Conventions, prefix string, reporter *Reporter) error {
	name := ResolveConventionName(prefix, RoutesConvention)
	if !conventions.Exists(name) {
		return nil
	}

	instance, err := conventions.Instantiate(name, container)
	if err != nil {
		return err
	}
	routes, ok := instance.(ApplicationRoutes)
	if !ok {
		return fmt.Errorf("%s must implement bootstrap.ApplicationRoutes, got %T", name, instance)
	}

	rt, err := di.Resolve[*router.Router](container, di.Framework.Router)
	if err != nil {
		return err
	}
	if factory, ok := di.TryResolve[router.ContextFactory](container, di.Framework.Context); ok {
		rt.SetContextFactory(factory)
	}

	routes.Init(rt)
	if err := rt.CompileRoutes(); err != nil {
		return err
	}

	reporter.LogRoutes(rt.Routes())
	return nil
}
