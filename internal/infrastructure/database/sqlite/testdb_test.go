package sqlite

import (
	"berries/internal/pkg/config"
	"berries/internal/pkg/logger"
	"testing"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(config.DatabaseConfig{URL: ":memory:"}, logger.NewNop())
	if err != nil {
		t.Fatalf("NewDB error: %v", err)
	}
	t.Cleanup(func() { _ = CloseDB(db) })
	return db
}
