package lambda

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"space-finder-api/internal/config"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		Spaces: config.SpacesConfig{StorageType: config.StorageSQLite},
		Database: config.DatabaseConfig{
			ConnectionString: filepath.Join(t.TempDir(), "spaces.db"),
		},
	}
}

func TestConnectionManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cm := &ConnectionManager{}
	if cm.IsHealthy() {
		t.Error("Uninitialized manager should not be healthy")
	}

	if err := cm.Initialize(ctx, sqliteConfig(t), logger); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	first, err := cm.GetContainer(ctx)
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}
	second, _ := cm.GetContainer(ctx)
	if first != second {
		t.Error("Expected the container to be reused")
	}
	if !cm.IsHealthy() {
		t.Error("Expected healthy manager")
	}

	cm.mu.Lock()
	cm.lastUsed = time.Now().Add(-2 * staleAfter)
	cm.mu.Unlock()
	if cm.IsHealthy() {
		t.Error("Expected stale manager to be unhealthy")
	}

	if err := cm.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if cm.IsHealthy() {
		t.Error("Expected unhealthy manager after cleanup")
	}

	rebuilt, err := cm.GetContainer(ctx)
	if err != nil {
		t.Fatalf("GetContainer() after cleanup failed: %v", err)
	}
	if rebuilt == first {
		t.Error("Expected a new container after cleanup")
	}
	_ = cm.Cleanup()
}

func TestConnectionManager_StaleContainer(t *testing.T) {
	ctx := context.Background()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cm := &ConnectionManager{}
	if err := cm.Initialize(ctx, sqliteConfig(t), logger); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	defer cm.Cleanup()

	expire := func() {
		cm.mu.Lock()
		cm.lastUsed = time.Now().Add(-2 * staleAfter)
		cm.mu.Unlock()
	}

	first := cm.current()

	expire()
	kept, err := cm.GetContainer(ctx)
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}
	if kept != first {
		t.Error("Expected a stale but healthy container to be reused")
	}
	if !cm.IsHealthy() {
		t.Error("Expected the reused container to be marked as used")
	}

	// Break the store behind the manager's back
	if err := first.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	expire()

	rebuilt, err := cm.GetContainer(ctx)
	if err != nil {
		t.Fatalf("GetContainer() failed: %v", err)
	}
	if rebuilt == first {
		t.Error("Expected a broken idle container to be rebuilt")
	}
	if err := rebuilt.HealthCheck(ctx); err != nil {
		t.Errorf("Rebuilt container is unhealthy: %v", err)
	}
}

func TestGetConnectionManager_Singleton(t *testing.T) {
	if GetConnectionManager() != GetConnectionManager() {
		t.Error("Expected the same instance")
	}
}
