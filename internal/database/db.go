package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL dialect (lib/pq)
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite dialect (mattn/go-sqlite3)
)

// Open connects to the configured database and returns the handle. The
// handle is passed explicitly to the store; there is no package-level
// connection.
func Open(driver, source string) (*gorm.DB, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return db, nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
