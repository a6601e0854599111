package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alimgiray/workhours/pkg/logger"
)

var DB *sql.DB

// Init opens the SQLite database at the given path (created if missing),
// tunes it for concurrent reads, and runs the migration scripts.
func Init(path string) error {
	var err error

	DB, err = sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return err
	}

	// Configure connection pool
	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err = DB.Ping(); err != nil {
		return err
	}

	if err = optimizeDatabase(); err != nil {
		return err
	}

	logger.Info("Database connected successfully with WAL mode")

	// Run SQL scripts
	if err = RunSQLScripts(); err != nil {
		return err
	}

	return nil
}

// optimizeDatabase configures SQLite for concurrent access. WAL mode lets
// holiday lookups read while a submission writes.
func optimizeDatabase() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=30000",
	}

	for _, pragma := range pragmas {
		if _, err := DB.Exec(pragma); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RunSQLScripts reads and executes SQL scripts from the migrations directory
func RunSQLScripts() error {
	sqlDir := "migrations"
	files, err := os.ReadDir(sqlDir)
	if err != nil {
		return err
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) == ".sql" {
			sqlPath := filepath.Join(sqlDir, file.Name())
			sqlContent, err := os.ReadFile(sqlPath)
			if err != nil {
				return err
			}

			if _, err = DB.Exec(string(sqlContent)); err != nil {
				return err
			}

			logger.Infof("Executed SQL script: %s", file.Name())
		}
	}

	return nil
}
