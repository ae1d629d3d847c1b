// Package standalone runs a booted framework behind its own HTTP
// server. It wires the bootstrap lifecycle to an h2c-capable
// http.Server so the compiled routes are reachable over HTTP/1.1 and
// cleartext HTTP/2 on one port.
package standalone

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ronin-framework/ronin/bootstrap"
	"github.com/ronin-framework/ronin/config"
	"github.com/ronin-framework/ronin/di"
	"github.com/ronin-framework/ronin/logger"
	"github.com/ronin-framework/ronin/router"
	"github.com/ronin-framework/ronin/version"
)

// Server boots the framework and serves its compiled routes.
type Server struct {
	boot       *bootstrap.Bootstrap
	props      *config.Properties
	httpServer *http.Server
	log        *logger.Logger
}

// New creates an unstarted standalone server over the given property
// set. Convention units are registered through Conventions before Start.
func New(props *config.Properties) *Server {
	if props == nil {
		props = config.NewProperties()
	}
	return &Server{
		boot:  bootstrap.New(props),
		props: props,
		log:   logger.WithComponent("standalone"),
	}
}

// Conventions exposes the bootstrap's convention registry.
func (s *Server) Conventions() *bootstrap.Conventions {
	return s.boot.Conventions()
}

// Bootstrap exposes the underlying bootstrap, mainly for container
// access after Start.
func (s *Server) Bootstrap() *bootstrap.Bootstrap {
	return s.boot
}

// Start boots the framework and begins serving. It returns once the
// listener is bound so the caller knows the port is ready; serving
// continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	if err := s.boot.Boot(); err != nil {
		return err
	}
	s.log = logger.WithComponent("standalone")

	cfg, err := ConfigOf(s.props)
	if err != nil {
		s.boot.Shutdown()
		return err
	}

	rt, err := di.Resolve[*router.Router](s.boot.Container(), di.Framework.Router)
	if err != nil {
		s.boot.Shutdown()
		return err
	}
	s.registerStatusEndpoint(rt.Engine())

	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      h2c.NewHandler(rt.Engine(), h2s),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.boot.Shutdown()
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	// The goroutine must hold its own reference: Stop clears s.httpServer.
	srv := s.httpServer
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", logger.ErrorFields("serve", err))
		}
	}()

	s.log.Info("HTTP server started", logger.Fields("addr", s.httpServer.Addr))
	return nil
}

// Stop drains in-flight requests with a 5-second deadline, then shuts
// the framework down. Stop before Start only logs.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		s.log.Error("Stop requested but server never started")
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.log.Error("Server shutdown error", logger.ErrorFields("shutdown", err))
	}
	s.httpServer = nil

	s.boot.Shutdown()
	if err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// Addr returns the configured listen address, or "" before Start.
func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

// registerStatusEndpoint mounts the built-in status route reporting
// application identity, build version and route count.
func (s *Server) registerStatusEndpoint(engine *gin.Engine) {
	container := s.boot.Container()
	cfg := di.MustResolve[*config.FrameworkConfig](container, di.Framework.Config)
	rt := di.MustResolve[*router.Router](container, di.Framework.Router)

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"application": cfg.Application.Name,
			"mode":        cfg.Application.Mode,
			"version":     version.GetShortVersion(),
			"routes":      len(rt.Routes()),
		})
	})
}
