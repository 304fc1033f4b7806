package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/MuhamadAgungGumelar/apexchat-be/migrations"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLiteDSN = "file:apexchat.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)

// DB wraps both GORM and sql.DB. It is constructed once at startup and
// handed to repositories; nothing in the process holds it globally.
type DB struct {
	*sql.DB
	GORM   *gorm.DB
	Driver string
}

type Options struct {
	URL      string
	Driver   string
	LogLevel logger.LogLevel
}

// Open connects to Postgres or SQLite and verifies the connection.
func Open(opts Options) (*DB, error) {
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres:
		if opts.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is empty")
		}
		dialector = postgres.Open(opts.URL)
	case DriverSQLite, "":
		dsn := opts.URL
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
		opts.Driver = DriverSQLite
		// pure-Go modernc driver instead of the cgo default
		dialector = sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", opts.Driver)
	}

	gormDB, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Connection pool settings
	if opts.Driver == DriverSQLite {
		// single writer; also keeps in-memory databases on one connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("driver", opts.Driver).Msg("✅ Database connected (GORM)")
	return &DB{
		DB:     sqlDB,
		GORM:   gormDB,
		Driver: opts.Driver,
	}, nil
}

// Migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations; SQLite, used for local runs and tests, is auto-migrated from
// the given models.
func (db *DB) Migrate(models ...interface{}) error {
	if db.Driver == DriverSQLite {
		if err := db.GORM.AutoMigrate(models...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		return nil
	}
	return migrations.Up(db.DB)
}

func (db *DB) Close() error {
	log.Info().Msg("🔌 Closing database connection...")
	return db.DB.Close()
}
