package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/gray-logic-homegraph/internal/audit"
	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/logging"
)

// gracefulShutdownTimeout bounds how long Close waits for in-flight requests.
const gracefulShutdownTimeout = 10 * time.Second

// HealthChecker is implemented by the infrastructure clients (database,
// MQTT, InfluxDB).
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config   config.APIConfig
	WS       config.WebSocketConfig
	Security config.SecurityConfig
	Logger   *logging.Logger
	Service  *enumerate.Service
	Store    *homegraph.Store

	// Audit is optional; when nil calls are not recorded and /audit
	// answers 404.
	Audit audit.Repository

	// Checks are reported by /health under their map key.
	Checks map[string]HealthChecker

	Version string
}

// Server is the HTTP transport. Create it with New and start it with Start.
type Server struct {
	cfg     config.APIConfig
	wsCfg   config.WebSocketConfig
	secCfg  config.SecurityConfig
	logger  *logging.Logger
	service *enumerate.Service
	store   *homegraph.Store
	audit   audit.Repository
	checks  map[string]HealthChecker
	version string

	hub    *Hub
	router http.Handler
	server *http.Server
	cancel context.CancelFunc
}

// New validates deps, builds the router and subscribes the WebSocket hub
// to snapshot updates. Nothing listens until Start.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Service == nil {
		return nil, fmt.Errorf("enumeration service is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("graph store is required")
	}

	s := &Server{
		cfg:     deps.Config,
		wsCfg:   deps.WS,
		secCfg:  deps.Security,
		logger:  deps.Logger.Component("api"),
		service: deps.Service,
		store:   deps.Store,
		audit:   deps.Audit,
		checks:  deps.Checks,
		version: deps.Version,
	}
	s.hub = NewHub(s.logger)
	s.store.Subscribe(func(snap *homegraph.Snapshot) {
		s.hub.Broadcast(ChannelSnapshotUpdated, snapshotInfo(snap))
	})
	s.router = s.buildRouter()
	return s, nil
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start launches the listener in a background goroutine. ctx bounds the
// hub's lifetime; Close stops both.
func (s *Server) Start(ctx context.Context) error {
	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(ctx)
	go s.hub.Run(srvCtx)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS", "address", s.server.Addr, "cert", s.cfg.TLS.CertFile)
			err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", s.server.Addr)
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close stops the hub and shuts the listener down, waiting up to
// gracefulShutdownTimeout for in-flight requests.
func (s *Server) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck reports whether Start has been called.
func (s *Server) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("api health check: %w", err)
	}
	if s.server == nil {
		return fmt.Errorf("api server not started")
	}
	return nil
}

func (s *Server) authEnabled() bool {
	return s.secCfg.JWT.Secret != ""
}
