package di

// Module is a self-contained bundle of bindings fed to the container at
// construction time.
type Module interface {
	Configure(b *Binder)
}

// ModuleFunc adapts a plain function to the Module interface.
type ModuleFunc func(b *Binder)

// Configure calls f.
func (f ModuleFunc) Configure(b *Binder) { f(b) }

// Binder collects bindings while modules are configured. Module order
// matters: a later binding for an already-bound key overrides the
// earlier one.
type Binder struct {
	bindings []*binding
	index    map[string]int
}

// NewBinder creates an empty binder.
func NewBinder() *Binder {
	return &Binder{index: make(map[string]int)}
}

// Bind registers a lazily constructed binding. The constructor runs on
// first resolve.
func (b *Binder) Bind(key string, constructor interface{}) {
	b.put(&binding{key: key, mode: Lazy, constructor: constructor})
}

// BindEager registers a binding constructed during container creation.
func (b *Binder) BindEager(key string, constructor interface{}) {
	b.put(&binding{key: key, mode: Eager, constructor: constructor})
}

// BindSingleton registers a pre-created instance.
func (b *Binder) BindSingleton(key string, instance interface{}) {
	b.put(&binding{key: key, mode: Singleton, instance: instance, initialized: true})
}

func (b *Binder) put(nb *binding) {
	if i, exists := b.index[nb.key]; exists {
		// Last module wins, original position is kept so construction
		// order stays deterministic.
		b.bindings[i] = nb
		return
	}
	b.index[nb.key] = len(b.bindings)
	b.bindings = append(b.bindings, nb)
}
