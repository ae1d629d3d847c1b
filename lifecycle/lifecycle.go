// Package lifecycle provides the framework's start/stop hook bus. The
// Support singleton is bound into every container; framework subsystems
// and applications register hooks, and the bootstrap fires them around
// the application's own start and shutdown notifications.
package lifecycle

import (
	"fmt"
	"sync"

	"github.com/ronin-framework/ronin/di"
	"github.com/ronin-framework/ronin/logger"
)

// Hook pairs a named start and stop callback. Either callback may be nil.
type Hook struct {
	Name    string
	OnStart func() error
	OnStop  func() error
}

// Support is the lifecycle hook bus. Hooks start in registration order
// and stop in reverse order.
type Support struct {
	mu      sync.Mutex
	hooks   []Hook
	started bool
	log     *logger.Logger
}

// NewSupport creates an empty lifecycle hook bus.
func NewSupport() *Support {
	return &Support{log: logger.WithComponent("lifecycle")}
}

// Register adds a hook. Registration order determines start order.
func (s *Support) Register(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Start fires all start hooks in registration order, stopping at the
// first failure.
func (s *Support) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("lifecycle already started")
	}

	for _, h := range s.hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(); err != nil {
			return fmt.Errorf("start hook %q failed: %w", h.Name, err)
		}
		s.log.Debug("Start hook fired", logger.Fields("hook", h.Name))
	}

	s.started = true
	return nil
}

// Stop fires all stop hooks in reverse registration order. All hooks run
// even when some fail; the first error is returned.
func (s *Support) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	var firstErr error
	for i := len(s.hooks) - 1; i >= 0; i-- {
		h := s.hooks[i]
		if h.OnStop == nil {
			continue
		}
		if err := h.OnStop(); err != nil {
			s.log.Error("Stop hook failed", logger.ErrorFields(h.Name, err))
			if firstErr == nil {
				firstErr = fmt.Errorf("stop hook %q failed: %w", h.Name, err)
			}
			continue
		}
		s.log.Debug("Stop hook fired", logger.Fields("hook", h.Name))
	}

	s.started = false
	return firstErr
}

// Started reports whether Start has run without a matching Stop.
func (s *Support) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Module returns the lifecycle-support module. It is always the first
// module fed to the container.
func Module() di.Module {
	return di.ModuleFunc(func(b *di.Binder) {
		b.BindSingleton(di.Framework.Lifecycle, NewSupport())
	})
}
