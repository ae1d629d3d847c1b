package di

import "fmt"

// MustResolve resolves a binding with type safety, panicking on error.
//
// Example:
//
//	r := di.MustResolve[*router.Router](container, "router")
func MustResolve[T any](r Resolver, key string) T {
	instance, err := r.Resolve(key)
	if err != nil {
		panic(fmt.Sprintf("di: failed to resolve %s: %v", key, err))
	}
	result, ok := instance.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("di: binding %s is %T, expected %T", key, instance, zero))
	}
	return result
}

// Resolve resolves a binding with type safety, returning an error on
// failure or type mismatch.
func Resolve[T any](r Resolver, key string) (T, error) {
	var zero T
	instance, err := r.Resolve(key)
	if err != nil {
		return zero, fmt.Errorf("di: failed to resolve %s: %w", key, err)
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("di: binding %s is %T, expected %T", key, instance, zero)
	}
	return result, nil
}

// TryResolve resolves a binding, returning the zero value and false when
// absent or of the wrong type. Use for optional dependencies.
func TryResolve[T any](r Resolver, key string) (T, bool) {
	var zero T
	instance, err := r.Resolve(key)
	if err != nil {
		return zero, false
	}
	result, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return result, true
}
