package bootstrap

import (
	"fmt"
	"sync"

	"github.com/ronin-framework/ronin/di"
)

// Convention names the framework looks up to let an application override
// default behavior without explicit wiring.
const (
	// ModuleConvention is the application's main configuration module.
	ModuleConvention = "conf.Module"
	// DispatchConvention is the application's request-dispatch
	// registration module.
	DispatchConvention = "conf.DispatchModule"
	// RoutesConvention is the application's route declaration unit.
	RoutesConvention = "conf.Routes"
	// AppConvention is the application entry point receiving framework
	// start and shutdown notifications.
	AppConvention = "conf.App"
)

// Factory constructs a convention-named unit. The resolver is nil while
// modules are assembled (the container does not exist yet) and the live
// container for units obtained after construction, such as routes.
type Factory func(r di.Resolver) (interface{}, error)

// Conventions is the registry applications use to supply optional
// configuration units under convention names.
type Conventions struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewConventions creates an empty convention registry.
func NewConventions() *Conventions {
	return &Conventions{factories: make(map[string]Factory)}
}

// Register stores a factory under a fully resolved convention name.
func (c *Conventions) Register(name string, f Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factories[name] = f
}

// Exists reports whether a factory is registered under name. Absence is
// a normal, silent case, never an error.
func (c *Conventions) Exists(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.factories[name]
	return ok
}

// Instantiate constructs the unit registered under name. Existence must
// be confirmed first; a failing factory at this point is an operator
// error and surfaces as a fatal boot error.
func (c *Conventions) Instantiate(name string, r di.Resolver) (interface{}, error) {
	c.mu.RLock()
	f, ok := c.factories[name]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no factory registered for %s", name)
	}
	instance, err := f(r)
	if err != nil {
		return nil, fmt.Errorf("factory for %s failed: %w", name, err)
	}
	return instance, nil
}

// ResolveConventionName joins the optional namespace prefix and the
// convention suffix. With no prefix the suffix is used unchanged.
func ResolveConventionName(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "." + suffix
}
