// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/database"
	"gorm.io/gorm/logger"
)

var counter atomic.Int64

// New returns a migrated, isolated database that is closed when the test ends.
func New(t testing.TB, models ...interface{}) *database.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=busy_timeout(5000)", name, counter.Add(1))

	db, err := database.Open(database.Options{
		URL:      dsn,
		Driver:   database.DriverSQLite,
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(models...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
