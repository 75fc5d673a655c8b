package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DBOptions describes the store the process talks to.
type DBOptions struct {
	Driver       string // DriverPostgres or DriverSQLite
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// NewDB opens the process-wide connection pool. It is created once in main and
// shared by every request.
func NewDB(opts DBOptions, appLogger *slog.Logger) (*gorm.DB, error) {
	if appLogger == nil {
		appLogger = slog.Default()
	}
	if opts.URL == "" {
		return nil, fmt.Errorf("repository.NewDB: database url is empty")
	}

	dialector, err := openDialector(opts)
	if err != nil {
		return nil, err
	}

	gormLogLevel := gormlogger.Warn
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	}
	gormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	).LogMode(gormLogLevel)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormLogger,
		NowFunc: Now,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.String("driver", opts.Driver), slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, fmt.Errorf("repository.NewDB: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, fmt.Errorf("repository.NewDB: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM", slog.String("driver", opts.Driver))
	return db, nil
}

func openDialector(opts DBOptions) (gorm.Dialector, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverPostgres:
		return postgres.Open(opts.URL), nil
	case DriverSQLite:
		return sqlite.Open(SQLiteDSN(opts.URL)), nil
	default:
		return nil, fmt.Errorf("repository.NewDB: unsupported driver %q", opts.Driver)
	}
}

// SQLiteDSN turns on foreign key enforcement, which SQLite leaves off per
// connection unless asked. ON DELETE CASCADE depends on it.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Now is the clock used for created_at/updated_at. Postgres keeps microseconds,
// so the value handed back to callers is truncated the same way.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
