package storage

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testStorages returns every implementation that can run without external
// services. The Postgres implementation is covered by the shared interface
// semantics but needs a live server, so it is not exercised here.
func testStorages(t *testing.T) map[string]Storage {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	gs, err := NewGormStorage(db, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to init gorm storage: %v", err)
	}
	t.Cleanup(func() { gs.Close() })

	return map[string]Storage{
		"sqlite": gs,
		"memory": NewMemoryStorage(),
	}
}

func strptr(s string) *string { return &s }
