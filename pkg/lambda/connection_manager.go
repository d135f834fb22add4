package lambda

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"space-finder-api/internal/config"
	"space-finder-api/pkg/server"
)

// staleAfter is how long an unused container is still reported healthy
const staleAfter = 5 * time.Minute

// ConnectionManager keeps the service container alive across warm Lambda invocations
type ConnectionManager struct {
	container *server.Container
	lastUsed  time.Time
	mu        sync.RWMutex
	config    *config.Config
	logger    *logrus.Logger
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize builds the container for cfg. It is a no-op once a container exists.
func (cm *ConnectionManager) Initialize(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.logger = logger
	cm.container = container
	cm.lastUsed = time.Now()
	return nil
}

// GetContainer returns the service container, initializing from the
// environment if necessary. A container left idle past staleAfter is health
// checked first and rebuilt when the check fails.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	if existing := cm.current(); existing != nil {
		if cm.IsHealthy() {
			cm.touch()
			return existing, nil
		}

		err := existing.HealthCheck(ctx)
		if err == nil {
			cm.touch()
			return existing, nil
		}

		cm.log().WithError(err).Warn("Idle container failed its health check, rebuilding")
		if err := cm.Cleanup(); err != nil {
			cm.log().WithError(err).Warn("Failed to close idle container")
		}
	}

	cm.mu.RLock()
	cfg, logger := cm.config, cm.logger
	cm.mu.RUnlock()

	if cfg == nil {
		var err error
		cfg, err = config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
	}

	if err := cm.Initialize(ctx, cfg, logger); err != nil {
		return nil, err
	}

	return cm.current(), nil
}

func (cm *ConnectionManager) current() *server.Container {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container
}

func (cm *ConnectionManager) touch() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lastUsed = time.Now()
}

func (cm *ConnectionManager) log() *logrus.Logger {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	if cm.logger == nil {
		return logrus.StandardLogger()
	}
	return cm.logger
}

// IsHealthy reports whether a container exists and was used recently
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.container == nil {
		return false
	}

	return time.Since(cm.lastUsed) < staleAfter
}

// Cleanup closes the container. The next GetContainer call rebuilds it.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}

	err := cm.container.Close()
	cm.container = nil
	return err
}
