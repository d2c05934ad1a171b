// Package database provides driver-keyed connection setup for the
// supported storage backends.
package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Driver identifies a storage backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Config selects and configures the storage backend.
type Config struct {
	Driver Driver

	// SQLitePath is the database file path when Driver is sqlite.
	SQLitePath string

	// PostgresURL is the connection string when Driver is postgres.
	PostgresURL string
}

// ParseDriver validates a driver name.
func ParseDriver(name string) (Driver, error) {
	switch Driver(name) {
	case DriverSQLite, DriverPostgres:
		return Driver(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
}

// DefaultSQLitePath returns the default database location under the user's
// home directory.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pawplan.db"
	}
	return filepath.Join(home, ".pawplan", "pawplan.db")
}

// EnsureDirectory creates the parent directory for a database file.
func EnsureDirectory(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
