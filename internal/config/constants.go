// internal/config/constants.go
package config

const (
	AppName    = "workout-tracker"
	AppVersion = "0.3.0"
)

// Default settings
const (
	DefaultServerPort     = ":8080"
	DefaultBasePath       = "/api"
	DefaultDatabaseDriver = DriverPostgres
	DefaultMaxOpenConns   = 25
	DefaultMaxIdleConns   = 10
	DefaultLogLevel       = "info"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
