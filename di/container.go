package di

import (
	"fmt"
	"reflect"
	"sync"
)

// Stage determines how strictly the container is constructed.
type Stage int

const (
	// Development defers construction of lazy bindings to first resolve.
	Development Stage = iota
	// Production constructs every eager binding during New and validates
	// all constructor signatures up front.
	Production
)

// RegistrationMode determines how a binding is resolved.
type RegistrationMode int

const (
	Eager     RegistrationMode = iota // constructed during New
	Lazy                              // constructed on first resolve
	Singleton                         // pre-created instance
)

// Resolver is the read side of the container. Constructors may accept a
// Resolver to receive their own dependencies.
type Resolver interface {
	Resolve(key string) (interface{}, error)
}

// RegistrationInfo describes a binding for introspection.
type RegistrationInfo struct {
	Key         string
	Mode        RegistrationMode
	Initialized bool
}

type binding struct {
	key         string
	mode        RegistrationMode
	constructor interface{}
	instance    interface{}
	initialized bool
	mu          sync.Mutex
}

// Container holds the resolved object graph. It is immutable after New:
// no bindings can be added or replaced once created.
type Container struct {
	bindings map[string]*binding
	order    []string
}

var _ Resolver = (*Container)(nil)

// New creates the container from the given modules in a single call.
// Modules are configured in order; later modules may override bindings
// from earlier ones. In Production stage all constructor signatures are
// validated and eager bindings are constructed before New returns; the
// first failure aborts creation.
func New(stage Stage, modules ...Module) (*Container, error) {
	binder := NewBinder()
	for _, m := range modules {
		m.Configure(binder)
	}

	c := &Container{
		bindings: make(map[string]*binding, len(binder.bindings)),
		order:    make([]string, 0, len(binder.bindings)),
	}
	for _, b := range binder.bindings {
		c.bindings[b.key] = b
		c.order = append(c.order, b.key)
	}

	if stage == Production {
		for _, key := range c.order {
			b := c.bindings[key]
			if b.mode == Singleton {
				continue
			}
			if err := validateConstructor(b.constructor); err != nil {
				return nil, fmt.Errorf("binding %q: %w", key, err)
			}
		}
		for _, key := range c.order {
			b := c.bindings[key]
			if b.mode != Eager {
				continue
			}
			instance, err := c.callConstructor(b.constructor)
			if err != nil {
				return nil, fmt.Errorf("failed to construct eager binding %q: %w", key, err)
			}
			b.instance = instance
			b.initialized = true
		}
	}

	return c, nil
}

// Resolve returns the instance bound to key, constructing it first when
// the binding is lazy.
func (c *Container) Resolve(key string) (interface{}, error) {
	b, exists := c.bindings[key]
	if !exists {
		return nil, fmt.Errorf("no binding for key: %s", key)
	}

	switch b.mode {
	case Singleton:
		return b.instance, nil
	case Eager:
		b.mu.Lock()
		defer b.mu.Unlock()
		if !b.initialized {
			// Development stage: eager bindings degrade to first-resolve.
			instance, err := c.callConstructor(b.constructor)
			if err != nil {
				return nil, fmt.Errorf("failed to construct binding %q: %w", key, err)
			}
			b.instance = instance
			b.initialized = true
		}
		return b.instance, nil
	case Lazy:
		b.mu.Lock()
		defer b.mu.Unlock()
		if !b.initialized {
			instance, err := c.callConstructor(b.constructor)
			if err != nil {
				return nil, fmt.Errorf("failed to construct binding %q: %w", key, err)
			}
			b.instance = instance
			b.initialized = true
		}
		return b.instance, nil
	default:
		return nil, fmt.Errorf("unknown binding mode for key: %s", key)
	}
}

// MustResolve resolves a binding, panicking on error.
func (c *Container) MustResolve(key string) interface{} {
	instance, err := c.Resolve(key)
	if err != nil {
		panic(err)
	}
	return instance
}

// Has reports whether a binding exists for key.
func (c *Container) Has(key string) bool {
	_, exists := c.bindings[key]
	return exists
}

// Registrations returns info about all bindings in binding order.
func (c *Container) Registrations() []RegistrationInfo {
	result := make([]RegistrationInfo, 0, len(c.order))
	for _, key := range c.order {
		b := c.bindings[key]
		b.mu.Lock()
		result = append(result, RegistrationInfo{
			Key:         key,
			Mode:        b.mode,
			Initialized: b.initialized,
		})
		b.mu.Unlock()
	}
	return result
}

// Close closes every constructed instance implementing Close() error, in
// reverse binding order.
func (c *Container) Close() error {
	var firstErr error
	for i := len(c.order) - 1; i >= 0; i-- {
		b := c.bindings[c.order[i]]
		b.mu.Lock()
		instance, ok := b.instance, b.initialized
		b.mu.Unlock()
		if !ok || instance == nil {
			continue
		}
		if closer, isCloser := instance.(interface{ Close() error }); isCloser {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("closing %q: %w", b.key, err)
			}
		}
	}
	return firstErr
}

var resolverType = reflect.TypeOf((*Resolver)(nil)).Elem()

// validateConstructor checks a constructor signature without calling it:
// a function taking nothing or a single Resolver, returning the instance
// or (instance, error).
func validateConstructor(constructor interface{}) error {
	fn := reflect.ValueOf(constructor)
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("constructor must be a function, got %T", constructor)
	}
	fnType := fn.Type()

	switch fnType.NumIn() {
	case 0:
	case 1:
		if !resolverType.AssignableTo(fnType.In(0)) {
			return fmt.Errorf("constructor parameter must accept di.Resolver, got %s", fnType.In(0))
		}
	default:
		return fmt.Errorf("constructor must take no arguments or a single di.Resolver")
	}

	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != reflect.TypeOf((*error)(nil)).Elem() {
			return fmt.Errorf("constructor second return value must be error")
		}
	default:
		return fmt.Errorf("constructor must return the instance or (instance, error)")
	}

	return nil
}

func (c *Container) callConstructor(constructor interface{}) (interface{}, error) {
	if err := validateConstructor(constructor); err != nil {
		return nil, err
	}

	fn := reflect.ValueOf(constructor)

	var results []reflect.Value
	if fn.Type().NumIn() == 1 {
		results = fn.Call([]reflect.Value{reflect.ValueOf(c).Convert(fn.Type().In(0))})
	} else {
		results = fn.Call(nil)
	}

	if len(results) == 2 {
		if errVal := results[1].Interface(); errVal != nil {
			return nil, errVal.(error)
		}
	}
	return results[0].Interface(), nil
}
