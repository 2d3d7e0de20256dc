// Package app provides the dependency injection container for the
// application.
package app

import (
	"fmt"
	"log/slog"

	"taskman/internal/domain"
	"taskman/internal/infra/api"
	"taskman/internal/infra/config"
	"taskman/internal/infra/localstore"
	"taskman/internal/infra/logging"
	"taskman/internal/infra/mockapi"
	"taskman/internal/state"
)

// Container holds the wired application: configuration, ports, and the state
// owners. The state owners are constructed once at startup and torn down at
// process exit; they are never recreated mid-run.
type Container struct {
	Service domain.TaskService
	Store   domain.KeyValueStore
	Session *state.SessionState
	Tasks   *state.TaskListState
	Prefs   *state.PrefState
	Logger  *slog.Logger

	Config config.Config

	stopMock func()
	closeLog func() error
}

// New creates a Container from the on-disk configuration. When no API URL is
// configured, the simulated remote service is started in-process on a
// loopback port and the client is pointed at it.
func New(configDir string) (*Container, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	store := localstore.New(cfg.StateDir)
	logger, closeLog := logging.New(cfg.StateDir, logging.ParseLevel(cfg.LogLevel))

	apiURL := cfg.APIURL
	var stopMock func()
	if apiURL == "" {
		server := mockapi.New(store, domain.RealClock{})
		apiURL, stopMock, err = server.Start()
		if err != nil {
			return nil, fmt.Errorf("start simulated service: %w", err)
		}
		logger.Info("simulated service started", "url", apiURL)
	}

	svc := api.New(apiURL)
	session := state.NewSessionState(svc, store, logger)

	return &Container{
		Service:  svc,
		Store:    store,
		Session:  session,
		Tasks:    state.NewTaskListState(svc, session, logger),
		Prefs:    state.NewPrefState(store),
		Logger:   logger,
		Config:   cfg,
		stopMock: stopMock,
		closeLog: closeLog,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg config.Config, svc domain.TaskService, store domain.KeyValueStore, logger *slog.Logger) *Container {
	session := state.NewSessionState(svc, store, logger)
	return &Container{
		Service: svc,
		Store:   store,
		Session: session,
		Tasks:   state.NewTaskListState(svc, session, logger),
		Prefs:   state.NewPrefState(store),
		Logger:  logger,
		Config:  cfg,
	}
}

// Close stops the in-process simulated service and releases the log file.
func (c *Container) Close() {
	if c.stopMock != nil {
		c.stopMock()
	}
	if c.closeLog != nil {
		_ = c.closeLog()
	}
}
