// Package scheduler provides the framework's scheduling support backed
// by robfig/cron. The Support singleton is bound into every container
// and tied to the lifecycle hook bus so scheduled jobs run only between
// framework start and shutdown.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/ronin-framework/ronin/di"
	"github.com/ronin-framework/ronin/lifecycle"
	"github.com/ronin-framework/ronin/logger"
)

// Support wraps a cron scheduler whose lifetime is tied to the framework
// lifecycle.
type Support struct {
	cron *cron.Cron
	log  *logger.Logger
}

// NewSupport creates a stopped scheduler.
func NewSupport() *Support {
	return &Support{
		cron: cron.New(),
		log:  logger.WithComponent("scheduler"),
	}
}

// Schedule registers a job under a cron expression. Jobs do not run
// until the framework starts.
func (s *Support) Schedule(spec string, job func()) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return 0, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	s.log.Debug("Job scheduled", logger.Fields("spec", spec))
	return id, nil
}

// Entries returns the scheduled jobs.
func (s *Support) Entries() []cron.Entry {
	return s.cron.Entries()
}

// start begins running scheduled jobs.
func (s *Support) start() error {
	s.cron.Start()
	return nil
}

// stop halts the scheduler without waiting for running jobs.
func (s *Support) stop() error {
	s.cron.Stop()
	return nil
}

// Module returns the scheduling-support module. The support is bound
// eagerly so its lifecycle hooks register during container creation.
func Module() di.Module {
	return di.ModuleFunc(func(b *di.Binder) {
		b.BindEager(di.Framework.Scheduler, func(r di.Resolver) (*Support, error) {
			s := NewSupport()
			lc, err := di.Resolve[*lifecycle.Support](r, di.Framework.Lifecycle)
			if err != nil {
				return nil, fmt.Errorf("scheduler requires lifecycle support: %w", err)
			}
			lc.Register(lifecycle.Hook{
				Name:    "scheduler",
				OnStart: s.start,
				OnStop:  s.stop,
			})
			return s, nil
		})
	})
}
