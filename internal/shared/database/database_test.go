package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
}

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(Options{
		URL:      "file:database_test?mode=memory&cache=shared",
		Driver:   DriverSQLite,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, DriverSQLite, db.Driver)
	require.NoError(t, db.Migrate(&widget{}))

	require.NoError(t, db.GORM.Create(&widget{Name: "gear"}).Error)

	var got widget
	require.NoError(t, db.GORM.First(&got).Error)
	assert.Equal(t, "gear", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Options{URL: "mysql://localhost", Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpenPostgresRequiresURL(t *testing.T) {
	_, err := Open(Options{Driver: DriverPostgres})
	assert.ErrorContains(t, err, "DATABASE_URL is empty")
}
